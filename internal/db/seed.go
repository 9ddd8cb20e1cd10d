package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type seedKnowledge struct {
	category, title, content string
	difficulty, priority     int
	tags                     string
}

type seedSkill struct {
	name, description, category string
	steps, materials            []string
	difficulty, minutes         int
	safety                      string
}

type seedProcedure struct {
	emergencyType    string
	severity         int
	immediateAction  string
	steps, resources []string
	prevention       string
}

type seedScenario struct {
	id, name, description, considerations string
	threat                                int
	equipment                             []string
	tips                                  string
}

type seedScenarioKnowledge struct {
	scenario string
	seedKnowledge
}

type seedThreat struct {
	scenario, name, threatType         string
	danger                             int
	description, signs, counter, avoid string
}

var baseKnowledge = []seedKnowledge{
	{"水源", "寻找安全水源", "在野外生存中，水是最重要的资源。人体可以在没有食物的情况下生存数周，但没有水只能生存3-5天。寻找水源的方法包括：1. 寻找流动的河流或溪流 2. 收集雨水 3. 寻找地下水源 4. 从植物中提取水分", 2, 5, "水源,生存,基础"},
	{"食物", "可食用植物识别", "在野外识别可食用植物是重要的生存技能。安全原则：1. 避免有毒植物 2. 进行可食性测试 3. 少量尝试 4. 观察身体反应。常见可食用植物包括蒲公英、车前草、野葱等。", 3, 4, "食物,植物,识别"},
	{"庇护所", "搭建临时庇护所", "庇护所能保护你免受恶劣天气影响。基本原则：1. 选择合适位置 2. 保持干燥 3. 保温隔热 4. 通风良好。可以使用树枝、树叶、石头等自然材料搭建。", 2, 4, "庇护所,搭建,保暖"},
	{"医疗", "基础急救知识", "掌握基础急救技能可以在紧急情况下挽救生命。包括：1. 止血处理 2. 骨折固定 3. 烧伤处理 4. 中毒处理 5. 心肺复苏等。", 4, 5, "医疗,急救,治疗"},
	{"生火", "野外生火基础", "火可以取暖、烹饪、净水和发出求救信号。要点：1. 选择避风且远离易燃物的地点 2. 准备火绒、引火物和燃料三类材料 3. 从小到大逐步添加燃料 4. 离开前彻底熄灭余火。", 2, 4, "生火,取暖,烹饪"},
	{"导航", "无工具辨别方向", "没有指南针时可以借助自然现象判断方向：1. 太阳东升西落 2. 夜间寻找北极星 3. 树木南侧枝叶通常更茂盛 4. 积雪北坡融化较慢。迷路时应先停下冷静，再决定行动。", 3, 3, "导航,方向,迷路"},
}

var baseSkills = []seedSkill{
	{"生火技能", "在野外生存中生火的基本技能", "生火",
		[]string{"收集干燥的引火材料", "准备火绒和引火物", "搭建火堆结构", "点燃火绒", "逐步添加燃料"},
		[]string{"火绒", "引火物", "干燥木材", "打火工具"}, 2, 30, "注意防火安全，选择合适地点"},
	{"净水技术", "将不安全的水源净化为可饮用水", "水源",
		[]string{"过滤大颗粒杂质", "煮沸消毒", "使用净水片", "自然沉淀", "紫外线消毒"},
		[]string{"过滤材料", "容器", "热源", "净水片"}, 2, 20, "确保水源彻底净化后再饮用"},
	{"弓钻取火", "无打火工具时利用摩擦生火", "生火",
		[]string{"制作弓和钻杆", "准备底板并刻出凹槽", "放置火绒", "快速拉动弓使钻杆旋转", "将火星转移到火绒并吹燃"},
		[]string{"弹性树枝", "绳索", "干燥硬木", "火绒"}, 4, 90, "注意手部防护，避免磨伤"},
	{"太阳能蒸馏取水", "利用阳光从土壤和植物中收集淡水", "水源",
		[]string{"挖一个约一米宽的坑", "在中央放置容器", "放入绿色植物", "用塑料布覆盖并压实边缘", "在塑料布中央放一块小石头"},
		[]string{"塑料布", "容器", "石头", "铲子"}, 3, 240, "不要放入有毒植物"},
	{"止血包扎", "处理外伤出血的基础急救技能", "医疗",
		[]string{"清洁双手", "直接压迫伤口", "抬高受伤部位", "加压包扎"},
		[]string{"干净布料", "绷带"}, 1, 10, "避免直接接触血液"},
}

var baseProcedures = []seedProcedure{
	{"外伤出血", 3, "立即压迫止血",
		[]string{"评估伤情", "清洁双手", "直接压迫伤口", "抬高受伤部位", "包扎固定", "监测生命体征"},
		[]string{"干净布料", "绷带", "消毒用品"}, "避免接触污染物，保持伤口清洁"},
	{"食物中毒", 2, "停止进食，大量饮水",
		[]string{"停止进食可疑食物", "大量饮用清水", "诱导呕吐（如适用）", "保持温暖", "监测症状", "寻求医疗帮助"},
		[]string{"清水", "保温材料"}, "严重症状时立即寻求专业医疗帮助"},
	{"骨折", 3, "固定伤肢，避免移动",
		[]string{"检查伤情", "用夹板固定骨折上下两个关节", "检查远端血液循环", "冷敷减轻肿胀", "尽快转运就医"},
		[]string{"夹板", "绷带", "布条"}, "活动时注意脚下，避免高处跳跃"},
}

var baseScenarios = []seedScenario{
	{"normal", "普通", "标准的野外生存环境", "基础生存技能、环境适应、资源管理", 2,
		[]string{"刀具", "打火工具", "净水工具", "急救包", "指南针"},
		"寻找水源、搭建庇护所、保持体温"},
	{"zombie", "僵尸末日", "僵尸病毒爆发，死者复活攻击活人", "避免噪音、群体行动、寻找安全区域", 5,
		[]string{"近战武器", "防护装备", "医疗用品", "食物储备", "通讯设备"},
		"保持安静、避开人群密集区、建立防御工事"},
	{"biochemical", "生化危机", "生化武器泄露，环境被污染", "防护服必需、空气过滤、去污处理", 4,
		[]string{"防护服", "防毒面具", "检测仪器", "去污剂", "密封容器"},
		"穿戴防护装备、避免接触污染物、定期检测"},
	{"nuclear", "核辐射", "核事故导致大范围辐射污染", "辐射防护、碘片服用、避难所选择", 4,
		[]string{"辐射检测仪", "碘片", "防护服", "铅板", "密封食物"},
		"远离辐射源、服用碘片、寻找地下避难所"},
	{"alien", "外星入侵", "外星生物入侵地球", "隐蔽行动、避免探测、团队合作", 5,
		[]string{"隐蔽装备", "通讯干扰器", "能量武器", "探测设备", "急救包"},
		"保持隐蔽、避免使用电子设备、寻找地下庇护所"},
	{"natural_disaster", "自然灾害", "地震、洪水、台风等自然灾害", "关注预警、远离危险建筑、准备应急物资", 3,
		[]string{"应急包", "手电筒", "收音机", "饮用水", "急救包"},
		"保持冷静、听从指挥、储备物资"},
}

var baseScenarioKnowledge = []seedScenarioKnowledge{
	{"zombie", seedKnowledge{"防御", "僵尸防御策略", "僵尸通过咬伤传播病毒，具有强烈的攻击性但行动缓慢。防御要点：1. 建立高墙或障碍物 2. 设置陷阱和警报系统 3. 准备近战武器 4. 保持安静避免吸引注意 5. 建立多个逃生路线", 3, 5, "僵尸,防御,安全"}},
	{"zombie", seedKnowledge{"医疗", "僵尸咬伤处理", "被僵尸咬伤后病毒潜伏期约6-24小时。处理方法：1. 立即清洗伤口 2. 使用消毒剂处理 3. 服用抗病毒药物（如有） 4. 隔离观察 5. 准备最坏情况的应对措施。注意：一旦出现发热、意识模糊等症状，感染已不可逆转。", 4, 5, "僵尸,咬伤,感染,医疗"}},
	{"zombie", seedKnowledge{"觅食", "僵尸环境下的食物获取", "在僵尸横行的环境中获取食物需要极度谨慎。策略：1. 夜间行动，僵尸视力较差 2. 搜索被遗弃的商店和住宅 3. 建立室内种植系统 4. 捕捉小动物 5. 储存罐头和干粮。避免在僵尸聚集区域觅食。", 3, 4, "僵尸,食物,觅食,夜间"}},
	{"biochemical", seedKnowledge{"防护", "生化防护装备使用", "生化环境中防护装备是生存关键。使用要点：1. 穿戴全封闭防护服 2. 使用正压式呼吸器 3. 定期检查装备密封性 4. 建立去污程序 5. 准备备用装备。进入污染区前必须检查所有装备完整性。", 4, 5, "生化,防护,装备,安全"}},
	{"biochemical", seedKnowledge{"去污", "生化去污程序", "接触生化污染物后的去污程序：1. 在安全区域建立去污站 2. 使用去污剂清洗装备 3. 按顺序脱除防护装备 4. 全身清洗消毒 5. 销毁污染物品。整个过程需要同伴协助，避免二次污染。", 4, 5, "生化,去污,清洗,程序"}},
}

var baseThreats = []seedThreat{
	{"zombie", "普通僵尸", "感染者", 3, "行动缓慢但数量众多的感染者", "腐烂气味、呻吟声、缓慢移动", "保持距离、使用长武器、攻击头部", "避免噪音、绕行群体"},
	{"zombie", "快速僵尸", "变异感染者", 4, "速度较快的变异僵尸", "快速移动、敏捷反应、更强攻击性", "使用远程武器、设置陷阱、团队配合", "提前发现、快速撤离"},
	{"biochemical", "毒气云", "化学污染", 5, "致命的化学毒气云团", "异常颜色气体、刺激性气味、植物枯萎", "佩戴防毒面具、快速撤离、逆风行进", "监测风向、避开低洼地区"},
	{"nuclear", "辐射热点", "高辐射区域", 4, "辐射强度极高的危险区域", "检测仪器报警、金属物品发热、生物异常", "立即撤离、服用碘片、寻求医疗", "使用检测设备、规划安全路线"},
}

// Seed inserts the built-in knowledge base inside a single transaction. It is
// a no-op when the knowledge table already has rows.
func Seed(ctx context.Context, uow UnitOfWork) error {
	return uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM knowledge_entries`).Scan(&count); err != nil {
			return fmt.Errorf("counting knowledge entries: %w", err)
		}
		if count > 0 {
			return nil
		}
		now := time.Now().UTC().Format(time.RFC3339)

		for _, k := range baseKnowledge {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO knowledge_entries (category, title, content, difficulty, priority, tags, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				k.category, k.title, k.content, k.difficulty, k.priority, k.tags, now); err != nil {
				return fmt.Errorf("seeding knowledge %q: %w", k.title, err)
			}
		}
		for _, s := range baseSkills {
			steps, materials, err := marshalPair(s.steps, s.materials)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO skills (name, description, category, steps_json, materials_json, difficulty, estimated_minutes, safety_notes, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				s.name, s.description, s.category, steps, materials, s.difficulty, s.minutes, s.safety, now); err != nil {
				return fmt.Errorf("seeding skill %q: %w", s.name, err)
			}
		}
		for _, p := range baseProcedures {
			steps, resources, err := marshalPair(p.steps, p.resources)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO emergency_procedures (emergency_type, severity, immediate_action, steps_json, resources_json, prevention_tips, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				p.emergencyType, p.severity, p.immediateAction, steps, resources, p.prevention, now); err != nil {
				return fmt.Errorf("seeding procedure %q: %w", p.emergencyType, err)
			}
		}
		for _, s := range baseScenarios {
			equipment, err := json.Marshal(s.equipment)
			if err != nil {
				return fmt.Errorf("encoding equipment: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO scenarios (scenario_id, name, description, base_threat_level, special_considerations, equipment_json, tips)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				s.id, s.name, s.description, s.threat, s.considerations, string(equipment), s.tips); err != nil {
				return fmt.Errorf("seeding scenario %q: %w", s.id, err)
			}
		}
		for _, k := range baseScenarioKnowledge {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO scenario_knowledge (scenario_id, category, title, content, difficulty, priority, tags)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				k.scenario, k.category, k.title, k.content, k.difficulty, k.priority, k.tags); err != nil {
				return fmt.Errorf("seeding scenario knowledge %q: %w", k.title, err)
			}
		}
		for _, t := range baseThreats {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO scenario_threats (scenario_id, threat_name, threat_type, danger_level, description, identification_signs, countermeasures, avoidance_tips)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				t.scenario, t.name, t.threatType, t.danger, t.description, t.signs, t.counter, t.avoid); err != nil {
				return fmt.Errorf("seeding threat %q: %w", t.name, err)
			}
		}
		return nil
	})
}

func marshalPair(a, b []string) (string, string, error) {
	ja, err := json.Marshal(a)
	if err != nil {
		return "", "", fmt.Errorf("encoding list: %w", err)
	}
	jb, err := json.Marshal(b)
	if err != nil {
		return "", "", fmt.Errorf("encoding list: %w", err)
	}
	return string(ja), string(jb), nil
}
