package scenario

import "github.com/alexanderramin/haven/internal/domain"

// Leaf answers of the router table.
var (
	zombieBite = answer{
		text:   "🧟 僵尸咬伤紧急处理：\n\n⚠️ 立即行动：\n1. 🩸 立即清洗伤口，用肥皂和清水冲洗\n2. 🧴 使用酒精或碘酒消毒\n3. 🩹 包扎伤口，避免二次感染\n4. 💊 服用抗生素（如有）\n5. 🌡️ 监测体温和症状\n\n🚨 警告信号：\n• 发热超过38°C\n• 伤口周围红肿\n• 意识模糊\n• 异常攻击性\n\n如出现以上症状，病毒感染可能已开始，需要立即隔离！",
		threat: domain.ThreatCritical,
		recs:   []string{"立即处理伤口", "监测症状", "准备隔离"},
	}
	zombieCombat = answer{
		text:   "⚔️ 僵尸战斗策略：\n\n🎯 有效武器：\n• 🔨 钝器：棒球棒、锤子、撬棍\n• 🗡️ 利器：砍刀、斧头（攻击头部）\n• 🏹 远程：弓箭、弹弓（安静）\n\n💡 战斗原则：\n1. 避免近身战斗\n2. 攻击头部是唯一有效方法\n3. 保持安静，避免吸引更多僵尸\n4. 准备多个逃生路线\n5. 团队配合，互相掩护\n\n⚠️ 避免使用枪械：噪音会吸引大量僵尸！",
		threat: domain.ThreatHigh,
		recs:   []string{"选择合适武器", "攻击头部", "保持安静"},
	}
	zombieHiding = answer{
		text:   "🏠 僵尸环境隐蔽策略：\n\n🔒 理想藏身地点：\n• 🏢 高层建筑（摧毁楼梯）\n• 🏭 地下室（多个出入口）\n• 🌉 桥梁下方\n• 🚇 地铁隧道（确认安全）\n\n🛡️ 防御措施：\n1. 堵塞所有入口\n2. 设置警报系统（铃铛、罐子）\n3. 准备安静的逃生路线\n4. 储备食物和水\n5. 保持绝对安静\n\n❌ 避免地点：\n• 医院（感染源）\n• 学校（人群聚集地）\n• 商场（僵尸聚集）",
		threat: domain.ThreatMedium,
		recs:   []string{"选择高地", "多重防御", "保持安静"},
	}
	zombieForaging = answer{
		text:   "🍖 僵尸环境觅食指南：\n\n🌙 最佳时机：\n• 夜间行动（僵尸视力差）\n• 雨天（掩盖声音）\n• 僵尸群体移动时\n\n🎯 搜索目标：\n• 🏪 小型便利店\n• 🏠 居民住宅\n• 🚚 被遗弃的货车\n• 🌱 屋顶花园\n\n📦 优先物品：\n1. 罐头食品（长期保存）\n2. 瓶装水\n3. 药品\n4. 电池和手电筒\n5. 安静的工具\n\n⚠️ 安全原则：\n• 永远不要单独行动\n• 设置观察哨\n• 准备快速撤离计划",
		threat: domain.ThreatHigh,
		recs:   []string{"夜间行动", "团队合作", "快速撤离"},
	}
	zombieGeneral = answer{
		text:   "🧟 僵尸末日生存要点：\n\n🎯 核心原则：\n1. 🤫 保持安静是生存关键\n2. 🏃 机动性比防御更重要\n3. 👥 小团队比单独行动安全\n4. 🧠 智慧比武力更有效\n\n📋 日常注意事项：\n• 定期检查装备\n• 规划多条逃生路线\n• 建立通讯计划\n• 储备必需品\n• 保持身体健康\n\n💡 记住：僵尸数量庞大但智力低下，用智慧战胜它们！",
		threat: domain.ThreatHigh,
		recs:   []string{"保持安静", "团队合作", "智慧应对"},
	}
	bioProtection = answer{
		text:   "☣️ 生化防护装备指南：\n\n🛡️ 必需装备：\n• 🥽 全面罩防毒面具（P3级别）\n• 🧥 全封闭防护服\n• 🧤 丁腈橡胶手套（双层）\n• 👢 防化靴套\n• 📱 通讯设备（防水密封）\n\n✅ 穿戴顺序：\n1. 内层衣物→防护服\n2. 内层手套→外层手套\n3. 防护靴→靴套\n4. 防毒面具（最后）\n\n🔍 检查要点：\n• 所有接缝密封\n• 面具气密性测试\n• 过滤器有效期\n• 装备完整性",
		threat: domain.ThreatCritical,
		recs:   []string{"全套防护", "正确穿戴", "定期检查"},
	}
	bioDecon = answer{
		text:   "🚿 生化去污程序：\n\n🏗️ 去污站设置：\n• 🌊 清洁区→缓冲区→污染区\n• 💧 大量清水供应\n• 🧴 去污剂（漂白剂溶液）\n• 🗑️ 污染物收集容器\n\n📋 去污步骤：\n1. 🚿 全身冲洗（穿着防护服）\n2. 🧽 去污剂擦洗\n3. 💦 清水冲洗\n4. 👕 按顺序脱除装备\n5. 🛁 个人清洗\n6. 👔 更换清洁衣物\n\n⚠️ 注意事项：\n• 需要同伴协助\n• 废水需要处理\n• 污染装备要销毁",
		threat: domain.ThreatHigh,
		recs:   []string{"建立去污站", "按程序操作", "同伴协助"},
	}
	bioPoisoning = answer{
		text:   "☠️ 生化中毒处理：\n\n🚨 立即行动：\n1. 🏃 脱离污染区域\n2. 🚿 大量清水冲洗\n3. 👕 脱除污染衣物\n4. 💧 大量饮水稀释\n5. 🤮 诱导呕吐（非腐蚀性）\n\n⚠️ 中毒症状：\n• 呼吸困难\n• 皮肤红肿\n• 恶心呕吐\n• 意识模糊\n• 肌肉痉挛\n\n💊 应急药物：\n• 活性炭（吸附毒素）\n• 阿托品（神经性毒剂）\n• 解毒剂（特定毒物）\n\n🏥 严重时立即寻求医疗救助！",
		threat: domain.ThreatCritical,
		recs:   []string{"立即脱离", "大量冲洗", "寻求救助"},
	}
	bioGeneral = answer{
		text:   "☣️ 生化危机生存要点：\n\n🎯 核心原则：\n1. 🛡️ 防护第一，预防为主\n2. 🌊 去污彻底，程序规范\n3. 👥 团队协作，互相监督\n4. 📡 信息收集，了解威胁\n\n📋 生存策略：\n• 避开污染区域\n• 监测风向变化\n• 寻找清洁水源\n• 建立安全区域\n• 定期健康检查\n\n💡 记住：生化威胁看不见摸不着，严格遵守防护程序是生存关键！",
		threat: domain.ThreatHigh,
		recs:   []string{"严格防护", "避开污染", "团队协作"},
	}
	nuclearDetection = answer{
		text:   "☢️ 辐射检测与防护：\n\n📱 检测设备：\n• 盖革计数器\n• 辐射剂量计\n• 个人剂量笔\n• 手机APP（简易）\n\n⚠️ 危险信号：\n• 设备持续报警\n• 金属物品发热\n• 动植物异常死亡\n• 电子设备故障\n\n📏 安全距离：\n• 低辐射：>100米\n• 中辐射：>1公里\n• 高辐射：>10公里\n\n⏰ 时间原则：\n• 暴露时间越短越好\n• 每小时检查剂量\n• 达到限值立即撤离",
		threat: domain.ThreatHigh,
		recs:   []string{"使用检测设备", "保持安全距离", "限制暴露时间"},
	}
	nuclearProtection = answer{
		text:   "🛡️ 核辐射防护策略：\n\n🏠 庇护所选择：\n• 🏢 混凝土建筑地下室\n• 🚇 地铁站\n• 🏔️ 天然洞穴\n• 🏭 厚墙工业建筑\n\n📐 防护原则：\n1. 🏃 距离：远离辐射源\n2. ⏰ 时间：减少暴露时间\n3. 🛡️ 屏蔽：使用防护材料\n\n🧱 屏蔽材料：\n• 铅板（最佳）\n• 混凝土\n• 钢板\n• 土壤（厚层）\n• 水（大量）\n\n💊 预防药物：\n• 碘片（防甲状腺癌）\n• 普鲁士蓝（铯中毒）",
		threat: domain.ThreatCritical,
		recs:   []string{"寻找地下庇护所", "使用屏蔽材料", "服用防护药物"},
	}
	nuclearMedical = answer{
		text:   "💊 核辐射医疗处理：\n\n🚨 急性辐射症状：\n• 恶心呕吐\n• 腹泻\n• 发热\n• 皮肤红肿\n• 脱发\n• 免疫力下降\n\n💉 应急药物：\n• 💊 碘化钾片（KI）\n  - 成人：130mg/天\n  - 儿童：65mg/天\n  - 服用时机：暴露前后24小时内\n\n🩺 支持治疗：\n• 大量饮水\n• 维生素补充\n• 抗生素预防感染\n• 止吐药物\n• 皮肤护理\n\n⚠️ 严重辐射病需要专业医疗救治！",
		threat: domain.ThreatCritical,
		recs:   []string{"及时服用碘片", "支持性治疗", "寻求专业救治"},
	}
	nuclearGeneral = answer{
		text:   "☢️ 核辐射环境生存：\n\n🎯 生存原则：\n1. 🏃 快速撤离高辐射区\n2. 🏠 寻找坚固庇护所\n3. 💊 及时服用防护药物\n4. 📡 收听官方信息\n\n📋 长期策略：\n• 避免污染食物和水\n• 定期监测辐射水平\n• 保持个人卫生\n• 储备医疗用品\n• 规划撤离路线\n\n💡 记住：辐射无色无味，依靠设备检测，严格遵守防护原则！",
		threat: domain.ThreatHigh,
		recs:   []string{"快速撤离", "寻找庇护所", "定期监测"},
	}
	alienHiding = answer{
		text:   "👽 外星入侵隐蔽策略：\n\n🕳️ 最佳藏身地点：\n• 🏔️ 深山洞穴\n• 🚇 废弃地铁隧道\n• 🏭 地下工业设施\n• 🌊 水下基地\n• 🌲 密林深处\n\n📡 避免探测：\n1. 🔇 关闭所有电子设备\n2. 🔥 避免使用明火\n3. 🌡️ 控制体温信号\n4. 👥 小群体分散行动\n5. 🌙 夜间活动\n\n🛡️ 反探测措施：\n• 使用法拉第笼\n• 金属屏蔽材料\n• 电磁干扰设备\n• 伪装和掩护\n\n⚠️ 假设外星科技远超人类，隐蔽是最佳策略！",
		threat: domain.ThreatExtreme,
		recs:   []string{"深度隐蔽", "避免探测", "分散行动"},
	}
	alienCommunication = answer{
		text:   "📡 外星入侵通讯策略：\n\n🚫 避免使用：\n• 手机网络\n• 无线电\n• 卫星通讯\n• 互联网\n• GPS设备\n\n✅ 安全通讯：\n• 🔦 光信号（莫尔斯码）\n• 🥁 声音信号\n• 🏃 人工传递\n• 🪞 镜子反光\n• 🔥 烟火信号\n\n📋 通讯协议：\n1. 建立暗号系统\n2. 设定联络时间\n3. 确定集合地点\n4. 准备紧急信号\n\n💡 原则：假设所有电子通讯都被监控！",
		threat: domain.ThreatHigh,
		recs:   []string{"避免电子通讯", "使用原始信号", "建立暗号"},
	}
	alienCombat = answer{
		text:   "⚔️ 外星入侵对抗策略：\n\n⚠️ 重要提醒：\n直接对抗外星科技可能是自杀行为！\n\n🎯 可行策略：\n• 🕳️ 游击战术\n• 💣 破坏行动\n• 📡 干扰通讯\n• 🏃 打了就跑\n• 👥 协调攻击\n\n🔧 可能有效武器：\n• EMP设备（电磁脉冲）\n• 强酸/强碱\n• 高温/低温\n• 声波武器\n• 生物武器（风险极高）\n\n💡 最佳策略：\n1. 收集外星科技情报\n2. 寻找弱点\n3. 联合其他幸存者\n4. 等待反击时机\n\n记住：智慧比武力更重要！",
		threat: domain.ThreatExtreme,
		recs:   []string{"避免直接对抗", "游击战术", "收集情报"},
	}
	alienGeneral = answer{
		text:   "👽 外星入侵生存指南：\n\n🎯 核心策略：\n1. 🕳️ 隐蔽为主，避免接触\n2. 📡 断绝电子信号\n3. 👥 小群体行动\n4. 🧠 收集情报信息\n\n📋 生存要点：\n• 假设被全面监控\n• 避免固定模式\n• 准备多个藏身点\n• 储备基础物资\n• 保持心理健康\n\n💭 心理准备：\n• 接受现实\n• 保持希望\n• 团结合作\n• 适应变化\n\n💡 记住：人类的适应能力和团结精神是最大优势！",
		threat: domain.ThreatExtreme,
		recs:   []string{"保持隐蔽", "收集情报", "团结合作"},
	}
	disasterGeneral = answer{
		text:   "自然灾害场景下的生存建议：\n\n1. 🌪️ 保持冷静，评估当前威胁\n2. 🏃 立即撤离到安全区域\n3. 📻 收听官方紧急广播\n4. 🎒 准备应急包和重要物品\n5. 👥 与家人朋友保持联系\n\n具体应对措施取决于灾害类型（地震、洪水、台风等）。",
		threat: domain.ThreatHigh,
		recs:   []string{"立即行动", "寻求安全", "保持通讯"},
	}
)
