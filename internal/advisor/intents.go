package advisor

import "github.com/alexanderramin/haven/internal/domain"

const greetingExamples = "\n\n请告诉我您遇到的具体生存问题，比如：\n• 如何寻找水源？\n• 怎样搭建庇护所？\n• 野外可食用植物有哪些？\n• 如何处理外伤？"

// cannedAnswers holds the fixed reply for each intent except greeting, which
// is assembled from a random template.
var cannedAnswers = map[domain.Intent]string{
	domain.IntentWaterSearch:         "🌊 寻找水源的方法：\n\n1. 🏞️ 寻找自然水源：河流、溪流、湖泊\n2. 🌧️ 收集雨水：使用容器、防水布\n3. 🌿 从植物获取：竹子、仙人掌、树液\n4. 💧 地下水：挖掘低洼地带\n5. 🌅 露水收集：清晨用布料收集\n\n⚠️ 重要提醒：任何水源都需要净化后才能饮用！",
	domain.IntentWaterPurify:         "🔥 水源净化方法：\n\n1. 🔥 煮沸消毒：煮沸5-10分钟杀死细菌\n2. 🧪 净水片：按说明使用化学净水片\n3. 🏺 过滤净化：沙子、木炭、布料分层过滤\n4. ☀️ 紫外线消毒：透明瓶装水日晒6小时\n5. 🧂 盐水沉淀：加盐静置让杂质沉淀\n\n💡 建议：多种方法结合使用效果更好！",
	domain.IntentWaterShortage:       "💦 缺水应急措施：\n\n1. 🚨 立即寻找水源，优先级最高\n2. 💧 节约用水，小口慢饮\n3. 🌡️ 避免出汗，减少活动\n4. 🍃 寻找含水植物：仙人掌、竹子\n5. 🌧️ 准备收集雨水的容器\n\n⚠️ 警告：人体缺水3天就有生命危险，请尽快找到水源！",
	domain.IntentFoodSearch:          "🍖 野外觅食方法：\n\n1. 🌿 采集植物：蒲公英、车前草、野葱\n2. 🐟 捕鱼：制作简易鱼叉、陷阱\n3. 🐛 昆虫蛋白：蚂蚱、蚯蚓（去头尾内脏）\n4. 🥜 坚果种子：橡子、松子（需处理）\n5. 🍄 蘑菇：仅采集确认安全的品种\n\n⚠️ 安全第一：不确定的食物绝对不要吃！",
	domain.IntentEdibleFood:          "🌱 常见可食用野生植物：\n\n✅ 安全食用：\n• 蒲公英：整株可食，富含维生素\n• 车前草：叶子可生食或煮食\n• 野葱：有葱味，可调味\n• 马齿苋：肉质叶片，可生食\n\n❌ 避免食用：\n• 颜色鲜艳的浆果\n• 有乳白色汁液的植物\n• 三叶植物（可能有毒）\n\n🧪 可食性测试：皮肤→嘴唇→舌尖→少量吞咽",
	domain.IntentShelterBuild:        "🏠 搭建庇护所步骤：\n\n1. 📍 选择位置：高地、避风、近水源\n2. 🌳 收集材料：树枝、树叶、石头\n3. 🏗️ 搭建框架：A字形或倾斜式\n4. 🍃 覆盖材料：树叶、草、防水布\n5. 🛡️ 防风防雨：加固结构，排水沟\n6. 🔥 保温措施：铺垫干草、反射热源\n\n💡 原则：干燥、保温、通风、隐蔽",
	domain.IntentShelterLocation:     "🗺️ 选择过夜地点原则：\n\n✅ 理想位置：\n• 地势较高，避免积水\n• 背风面，减少风寒\n• 靠近水源但不太近\n• 有天然屏障（岩石、大树）\n\n❌ 避免地点：\n• 河床、低洼地（洪水风险）\n• 山顶（风大寒冷）\n• 动物路径附近\n• 枯树下（倒塌风险）\n\n🌙 夜间安全：保持警觉，准备逃生路线",
	domain.IntentMedicalInjury:       "🏥 外伤处理步骤：\n\n1. 🧤 清洁双手，避免感染\n2. 🩸 评估伤情，优先止血\n3. 🧽 清洁伤口，去除异物\n4. 🤲 直接压迫止血\n5. 📈 抬高受伤部位\n6. 🩹 包扎固定，定期检查\n\n🚨 严重情况：大量出血、骨折外露、意识不清时，立即寻求专业医疗帮助！",
	domain.IntentMedicalPoisoning:    "☠️ 中毒应急处理：\n\n1. 🚫 立即停止摄入可疑物质\n2. 💧 大量饮用清水稀释毒素\n3. 🤮 诱导呕吐（非腐蚀性毒物）\n4. 🧂 服用活性炭（如有）\n5. 🌡️ 保持体温，观察症状\n6. 📝 记录摄入物质和时间\n\n⚠️ 注意：腐蚀性毒物（强酸强碱）不要催吐！\n🚨 严重症状时立即寻求医疗救助！",
	domain.IntentFireMaking:          "🔥 生火基本步骤：\n\n1. 🍃 准备火绒：干草、纸屑、桦树皮\n2. 🌿 收集引火物：细树枝、干叶\n3. 🪵 准备燃料：粗细不同的干木材\n4. 🏗️ 搭建火堆：锥形或井字形\n5. 🔥 点燃火绒，逐步添加燃料\n6. 💨 适当通风，维持火势\n\n💡 生火三要素：燃料、氧气、热源\n🛡️ 安全提醒：选择安全地点，准备灭火材料",
	domain.IntentFireNoTools:         "🔥 无工具生火方法：\n\n1. 🪨 火石打火：硬石头撞击产生火花\n2. 🌳 钻木取火：干木棒快速摩擦\n3. 🔍 放大镜聚焦：阳光聚焦点燃火绒\n4. 🔋 电池短路：电池两极用金属丝连接\n5. 🧊 冰透镜：制作冰块透镜聚光\n\n🎯 关键：准备充足的火绒和引火物\n💪 需要：耐心和持续的努力",
	domain.IntentNavigationLost:      "🧭 迷路时的应对方法：\n\n1. 🛑 停下来，保持冷静\n2. 🗺️ 回忆来路，寻找地标\n3. 📍 标记当前位置\n4. 🔍 寻找高点观察地形\n5. 🌊 跟随水流下山\n6. 📢 发出求救信号\n\n🚨 重要：不要盲目乱走，消耗体力\n💡 信号方法：三声哨响、烟火、反光镜",
	domain.IntentNavigationDirection: "🧭 野外辨别方向方法：\n\n☀️ 太阳定位：\n• 日出东方，日落西方\n• 中午太阳在南方（北半球）\n\n⭐ 星座定位：\n• 北极星指向正北\n• 通过北斗七星寻找北极星\n\n🌳 自然指标：\n• 树木南面枝叶茂盛\n• 岩石南面干燥\n• 蚂蚁洞口朝南\n\n🕐 手表定位：时针指向太阳，12点方向的一半是南方",
	domain.IntentDangerAnimals:       "🐻 遇到危险动物的应对：\n\n🐻 大型动物（熊、野猪）：\n• 不要跑，缓慢后退\n• 举起双手显得更大\n• 大声说话，不要尖叫\n\n🐍 毒蛇：\n• 保持距离，不要挑逗\n• 缓慢移动，避免突然动作\n• 穿长裤长靴防护\n\n🦎 一般原则：\n• 制造噪音，提前警告\n• 避免在动物活跃时间行动\n• 妥善存放食物",
	domain.IntentDangerPlants:        "☠️ 识别有毒植物：\n\n⚠️ 危险特征：\n• 鲜艳的颜色（红、橙、紫）\n• 乳白色汁液\n• 三叶结构\n• 强烈异味\n• 表面有刺毛\n\n🧪 安全测试：\n1. 皮肤接触测试\n2. 嘴唇轻触测试\n3. 舌尖品尝测试\n4. 少量吞咽测试\n\n🚫 绝对避免：不认识的蘑菇、浆果\n💡 原则：不确定就不吃！",
}

// intentAliases point intents that share a reply at the owning intent.
var intentAliases = map[domain.Intent]domain.Intent{
	domain.IntentEdiblePlants:     domain.IntentEdibleFood,
	domain.IntentMedicalTreatment: domain.IntentMedicalInjury,
}

// cannedAnswer returns the fixed reply for intent.
func cannedAnswer(intent domain.Intent) (string, bool) {
	if alias, ok := intentAliases[intent]; ok {
		intent = alias
	}
	text, ok := cannedAnswers[intent]
	return text, ok
}
