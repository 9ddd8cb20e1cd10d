package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/haven/internal/advisor"
	"github.com/alexanderramin/haven/internal/config"
	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/emergency"
	"github.com/alexanderramin/haven/internal/llm"
	"github.com/alexanderramin/haven/internal/repository"
	"github.com/alexanderramin/haven/internal/scenario"
	"github.com/alexanderramin/haven/internal/skills"
	"github.com/alexanderramin/haven/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App backed by a seeded in-memory DB and a config file
// in a temp dir. The active model is local, so nothing leaves the process.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewSeededTestDB(t)

	settings, err := config.Open(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	models, err := llm.NewManager(llm.DefaultConfig(), settings, nil)
	require.NoError(t, err)

	knowledge := repository.NewSQLiteKnowledgeRepo(database)
	history := repository.NewSQLiteHistoryRepo(database)

	return &App{
		Settings: settings,
		Session:  advisor.NewSession(settings),
		Composer: advisor.NewComposer(advisor.Deps{
			Responder: models,
			Knowledge: knowledge,
			History:   history,
			Picker:    advisor.FirstPicker,
		}),
		Models:    models,
		Scenarios: scenario.NewService(repository.NewSQLiteScenarioRepo(database), nil),
		Knowledge: knowledge,
		Skills:    skills.NewGuide(repository.NewSQLiteSkillRepo(database), repository.NewSQLiteProgressRepo(database), nil),
		Emergency: emergency.NewService(repository.NewSQLiteProcedureRepo(database), nil),
		History:   history,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func mustExecute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err, out)
	return out
}

func skillIDByName(t *testing.T, app *App, name string) int64 {
	t.Helper()
	found := app.Skills.Search(context.Background(), name, 0)
	require.NotEmpty(t, found, "skill %s not seeded", name)
	return found[0].ID
}

// --- root ---

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app)
	assert.Contains(t, out, "haven")
	assert.Contains(t, out, "scenario")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "teleport")
	assert.Error(t, err)
}

// --- ask ---

func TestAskCmd_PatternAnswer(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "ask", "净化水的方法")
	assert.Contains(t, out, "普通")
	assert.Contains(t, out, "问题模式")
}

func TestAskCmd_JoinsWordsIntoOneQuestion(t *testing.T) {
	app := testApp(t)

	mustExecute(t, app, "ask", "水源", "在哪")

	records, err := app.History.ListRecent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "水源 在哪", records[0].Question)
}

func TestAskCmd_ScenarioAnswerWithLocalModel(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "scenario", "set", "zombie")

	out := mustExecute(t, app, "ask", "被咬了怎么办")
	assert.Contains(t, out, "【僵尸末日场景】")
	assert.Contains(t, out, "场景处理")
	assert.NotContains(t, out, "提供支持")
}

func TestAskCmd_RequiresQuestion(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "ask")
	assert.Error(t, err)
}

func TestClampAnswer_OnlyCutsRemoteAnswers(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Settings.Set(config.KeyMaxResponseLength, 4))

	remote := app.clampAnswer(advisor.Answer{Text: "一二三四五六", Source: domain.SourceRemote})
	assert.Equal(t, "一二三四…", remote.Text)

	local := app.clampAnswer(advisor.Answer{Text: "一二三四五六", Source: domain.SourcePattern})
	assert.Equal(t, "一二三四五六", local.Text)
}

// --- history ---

func TestHistoryCmd(t *testing.T) {
	app := testApp(t)

	assert.Contains(t, mustExecute(t, app, "history"), "暂无提问记录")

	mustExecute(t, app, "ask", "如何生火")
	out := mustExecute(t, app, "history")
	assert.Contains(t, out, "如何生火")
}

// --- scenario ---

func TestScenarioSet_RoundTrip(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "scenario", "set", "nuclear")
	assert.Contains(t, out, "已切换到")
	assert.Equal(t, domain.ScenarioNuclear, app.Session.Scenario())

	// A new session over the same settings sees the change.
	assert.Equal(t, domain.ScenarioNuclear, advisor.NewSession(app.Settings).Scenario())

	reopened, err := config.Open(app.Settings.Path())
	require.NoError(t, err)
	assert.Equal(t, "nuclear", reopened.GetString(config.KeyScenario))
}

func TestScenarioSet_UnknownIDWarnsAndKeepsState(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "scenario", "set", "mars")
	require.NoError(t, err)
	assert.Contains(t, out, "unknown scenario")
	assert.Equal(t, domain.ScenarioNormal, app.Session.Scenario())
}

func TestScenarioSet_NoIDWithoutTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "scenario", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zombie")
}

func TestScenarioList_MarksActive(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "scenario", "list")
	for _, s := range domain.Scenarios {
		assert.Contains(t, out, string(s))
	}
}

func TestScenarioShow(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "scenario", "show", "zombie")
	assert.Contains(t, out, "僵尸末日")
	assert.Contains(t, out, "近战武器")
	assert.Contains(t, out, "专项问题")
	assert.Contains(t, out, "咬伤感染 · 战斗 · 躲藏 · 觅食补给")

	out = mustExecute(t, app, "scenario", "show", "atlantis")
	assert.Contains(t, out, "unknown scenario")
}

func TestScenarioThreats(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "scenario", "set", "zombie")

	out := mustExecute(t, app, "scenario", "threats", "--location", "城市", "--time", "夜晚")
	assert.Contains(t, out, "普通僵尸")
	assert.Contains(t, out, "快速僵尸")
}

func TestScenarioRisk(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "scenario", "risk", "--location", "城市", "--time", "夜晚", "--resources", "水,食物")
	want := scenario.AssessRisk(domain.ScenarioNormal, scenario.RiskFactors{
		Location:  "城市",
		TimeOfDay: "夜晚",
		GroupSize: 1,
		Resources: []string{"水", "食物"},
	})
	assert.Contains(t, out, fmt.Sprintf("%d/%d", want.Total, scenario.MaxRisk))
	assert.Contains(t, out, want.Description)
}

func TestScenarioTips_SituationMarkers(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "scenario", "tips", "--situation", "受伤又迷路")
	assert.Contains(t, out, "优先处理伤口")
	assert.Contains(t, out, "标记路径")
}

func TestScenarioSearch(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "scenario", "set", "zombie")

	assert.Contains(t, mustExecute(t, app, "scenario", "search", "咬伤"), "僵尸咬伤处理")
	assert.Contains(t, mustExecute(t, app, "scenario", "search", "不存在的词"), "没有找到")
}

func TestScenarioKnowledge(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "scenario", "set", "biochemical")

	out := mustExecute(t, app, "scenario", "knowledge")
	assert.Contains(t, out, "生化防护装备使用")
	assert.Contains(t, out, "生化去污程序")
}

// --- model ---

func TestModelUse_MissingCredentialWarns(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "model", "use", "deepseek")
	assert.Contains(t, out, "missing api key")
	assert.Equal(t, llm.ModelLocal, app.Models.Current().ID)
}

func TestModelUse_UnknownWarns(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "model", "use", "gemini")
	assert.Contains(t, out, "unknown model")
}

func TestModelKeyThenUse(t *testing.T) {
	app := testApp(t)

	mustExecute(t, app, "model", "key", "deepseek", "sk-test")
	out := mustExecute(t, app, "model", "use", "deepseek")
	assert.Contains(t, out, "DeepSeek")
	assert.Equal(t, llm.ModelDeepSeek, app.Models.Current().ID)

	assert.Contains(t, mustExecute(t, app, "model", "list"), "已设置")
}

func TestModelKey_LocalRejected(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "model", "key", "local", "x")
	assert.Contains(t, out, "unknown model")
}

func TestModelTest_Local(t *testing.T) {
	app := testApp(t)

	assert.Contains(t, mustExecute(t, app, "model", "test"), "本地规则引擎连接正常")
	assert.Contains(t, mustExecute(t, app, "model", "test", "openai"), "未设置")
}

func TestModelStats(t *testing.T) {
	app := testApp(t)

	assert.Contains(t, mustExecute(t, app, "model", "stats"), "尚未调用")

	mustExecute(t, app, "ask", "被咬了怎么办")
	assert.Contains(t, mustExecute(t, app, "model", "stats"), "local")
}

// --- knowledge ---

func TestKnowledgeCmd_Counts(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "knowledge")
	for _, c := range domain.Categories {
		assert.Contains(t, out, string(c))
	}
	assert.Contains(t, out, "饮水 净水")
	assert.Contains(t, out, "生火 火 点火 取暖")
	assert.NotContains(t, out, "取水", "only the first keywords are listed")
}

func TestKnowledgeCmd_Category(t *testing.T) {
	app := testApp(t)

	assert.Contains(t, mustExecute(t, app, "knowledge", "水源"), "寻找安全水源")
	assert.Contains(t, mustExecute(t, app, "knowledge", "天气"), "没有找到")
}

func TestKnowledgeCmd_UnknownCategory(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "knowledge", "魔法")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "水源")
}

func TestKnowledgeSearch(t *testing.T) {
	app := testApp(t)

	assert.Contains(t, mustExecute(t, app, "knowledge", "search", "急救"), "基础急救知识")
	assert.Contains(t, mustExecute(t, app, "knowledge", "search", "急救", "--category", "水源"), "没有找到")
}

// --- skills ---

func TestSkillsCmd_Categories(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "skills")
	assert.Contains(t, out, "生火")
	assert.Contains(t, out, "✔")
}

func TestSkillsList(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "skills", "list", "生火")
	assert.Contains(t, out, "生火技能")
	assert.Contains(t, out, "弓钻取火")
}

func TestSkillsShow_StepsAndPrerequisites(t *testing.T) {
	app := testApp(t)
	id := skillIDByName(t, app, "弓钻取火")

	out := mustExecute(t, app, "skills", "show", fmt.Sprint(id))
	assert.Contains(t, out, "制作弓和钻杆")
	assert.Contains(t, out, "建议先掌握")
	assert.Contains(t, out, "生火技能")
}

func TestSkillsShow_Errors(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "skills", "show", "9999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = executeCmd(t, app, "skills", "show", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid skill id")
}

func TestSkillsSearch_DifficultyFilter(t *testing.T) {
	app := testApp(t)

	assert.Contains(t, mustExecute(t, app, "skills", "search", "火"), "弓钻取火")
	assert.NotContains(t, mustExecute(t, app, "skills", "search", "火", "--max-difficulty", "2"), "弓钻取火")
}

func TestSkillsPath(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "skills", "path", "生火")
	assert.Contains(t, out, "L1")
	assert.Contains(t, out, "生火技能")
}

func TestSkillsRecommend(t *testing.T) {
	app := testApp(t)

	assert.Contains(t, mustExecute(t, app, "skills", "recommend", "--level", "1"), "止血包扎")
}

func TestSkillsProgress_RecordAndList(t *testing.T) {
	app := testApp(t)
	id := skillIDByName(t, app, "净水技术")

	assert.Contains(t, mustExecute(t, app, "skills", "progress"), "还没有学习记录")

	out := mustExecute(t, app, "skills", "progress", "set", fmt.Sprint(id), "50", "--notes", "煮沸已掌握")
	assert.Contains(t, out, "50%")

	out = mustExecute(t, app, "skills", "progress")
	assert.Contains(t, out, "净水技术")
	assert.Contains(t, out, "煮沸已掌握")
}

func TestSkillsProgress_UnknownSkill(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "skills", "progress", "set", "9999", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// --- emergency ---

func TestEmergencyIdentify(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "emergency", "identify", "手臂被割伤，一直在流血")
	assert.Contains(t, out, "外伤出血")
	assert.Contains(t, out, "40%")

	assert.Contains(t, mustExecute(t, app, "emergency", "identify", "一切正常"), "无法识别")
}

func TestEmergencyAssess(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "emergency", "assess", "大量出血", "呼吸困难")
	want := emergency.Assess([]string{"大量出血", "呼吸困难"}, nil)
	assert.Contains(t, out, fmt.Sprintf("评分 %d", want.Score))
	assert.Contains(t, out, want.Recommendation)
}

func TestEmergencyAssess_OnlyGivenVitalsCount(t *testing.T) {
	app := testApp(t)

	hr := 130
	out := mustExecute(t, app, "emergency", "assess", "头晕", "--heart-rate", "130")
	want := emergency.Assess([]string{"头晕"}, &domain.VitalSigns{HeartRate: &hr})
	assert.Contains(t, out, fmt.Sprintf("评分 %d", want.Score))
}

func TestEmergencyProcedure(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "emergency", "procedure", "骨折", "--info", "老人")
	assert.Contains(t, out, "固定伤肢")

	assert.Contains(t, mustExecute(t, app, "emergency", "procedure", "被外星人绑架"), "通用处理原则")
}

func TestEmergencyContactsAndPlan(t *testing.T) {
	app := testApp(t)

	assert.Contains(t, mustExecute(t, app, "emergency", "contacts"), "120")

	out := mustExecute(t, app, "emergency", "plan", "--group", "3")
	assert.Contains(t, out, "告知他人行程计划")
	assert.Contains(t, out, "指定团队领导者")
}

func TestEmergencyGuide(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "emergency", "guide", "骨折")
	assert.Contains(t, out, "骨折")
	assert.Contains(t, out, "优先行动")
}

// --- config warnings ---

func TestWarnOnConfigError(t *testing.T) {
	var buf bytes.Buffer

	assert.NoError(t, warnOnConfigError(&buf, fmt.Errorf("%w: x", llm.ErrMissingCredential)))
	assert.Contains(t, buf.String(), "missing api key")

	other := fmt.Errorf("disk full")
	assert.Equal(t, other, warnOnConfigError(&buf, other))
	assert.NoError(t, warnOnConfigError(&buf, nil))
}

// --- config ---

func TestConfigShow_MasksKeys(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "model", "key", "openai", "sk-abcdefghijkl")

	out := mustExecute(t, app, "config", "show")
	assert.Contains(t, out, "scenarios.current")
	assert.Contains(t, out, "ai.api_keys.openai")
	assert.Contains(t, out, "sk-****ijkl")
	assert.NotContains(t, out, "sk-abcdefghijkl")
	assert.Contains(t, out, app.Settings.Path())

	assert.Equal(t, out, mustExecute(t, app, "config"))
}

func TestConfigReset_RequiresForce(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "scenario", "set", "zombie")

	_, err := executeCmd(t, app, "config", "reset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
	assert.Equal(t, domain.ScenarioZombie, app.Session.Scenario())
}

func TestConfigReset_RestoresDefaults(t *testing.T) {
	app := testApp(t)
	userID := app.userID()
	mustExecute(t, app, "scenario", "set", "zombie")
	mustExecute(t, app, "model", "key", "claude", "sk-ant-123456789")
	mustExecute(t, app, "model", "use", "claude")

	out := mustExecute(t, app, "config", "reset", "--force")
	assert.Contains(t, out, "已恢复默认配置")

	assert.Equal(t, domain.ScenarioNormal, app.Session.Scenario())
	assert.Equal(t, llm.ModelLocal, app.Models.Current().ID)
	assert.Equal(t, userID, app.userID())
	for _, m := range app.Models.AvailableModels() {
		if m.Remote() {
			assert.False(t, m.HasAPIKey, "%s still has a key", m.ID)
		}
	}
}
