package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
)

// FormatShellWelcome renders the banner shown when the shell starts.
func FormatShellWelcome(meta domain.ScenarioMeta, model string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  haven") + Dim("  末日生存向导") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n\n")
	fmt.Fprintf(&b, "  %s %s %s   %s %s\n\n",
		Dim("场景"), meta.Icon, StyleGreen.Render(meta.Name),
		Dim("模型"), StyleGreen.Render(model))
	b.WriteString(StyleDim.Render("  直接输入问题即可获得生存建议，例如：") + "\n")
	b.WriteString("  " + StyleFg.Render("如何寻找水源？") + "\n")
	b.WriteString("  " + StyleFg.Render("被僵尸咬了怎么办？") + "\n\n")
	b.WriteString(StyleDim.Render("  输入 'help' 查看所有命令，'exit' 退出。") + "\n")
	return b.String()
}

type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		fmt.Fprintf(&b, "  %-28s %s\n", StyleGreen.Render(c[0]), StyleDim.Render(c[1]))
	}
	return b.String()
}

// FormatShellHelp renders the categorized command reference.
func FormatShellHelp() string {
	categories := []helpCategory{
		{"提问", [][]string{
			{"<问题>", "向生存向导提问"},
			{"history", "最近的提问记录"},
		}},
		{"场景", [][]string{
			{"scenario", "选择场景"},
			{"scenario list", "列出全部场景"},
			{"scenario show [id]", "场景详情"},
			{"scenario threats", "当前场景的威胁"},
			{"scenario risk", "风险评估"},
			{"scenario tips", "生存提示"},
			{"scenario search <词>", "搜索场景知识与威胁"},
		}},
		{"模型", [][]string{
			{"model", "选择AI模型"},
			{"model list", "模型与密钥状态"},
			{"model key <id> <key>", "设置API密钥"},
			{"model test [id]", "测试连接"},
			{"model stats", "本次调用统计"},
		}},
		{"知识与技能", [][]string{
			{"knowledge [分类]", "浏览生存知识"},
			{"knowledge search <词>", "搜索知识库"},
			{"skills list [分类]", "技能列表"},
			{"skills show <id>", "分步指南"},
			{"skills path <分类>", "学习路径"},
			{"skills recommend", "推荐技能"},
			{"skills progress", "学习进度"},
		}},
		{"紧急情况", [][]string{
			{"emergency identify <描述>", "识别紧急情况"},
			{"emergency assess <症状...>", "伤情评估"},
			{"emergency guide <类型>", "快速指南"},
			{"emergency procedure <类型>", "完整处理程序"},
			{"emergency contacts", "紧急联系电话"},
			{"emergency plan", "应急预案"},
		}},
		{"配置", [][]string{
			{"config show", "查看全部配置"},
			{"config reset --force", "恢复默认配置"},
		}},
		{"Shell", [][]string{
			{"clear", "清屏"},
			{"help", "显示帮助"},
			{"exit", "退出"},
		}},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	return b.String()
}
