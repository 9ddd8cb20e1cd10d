package domain

// ScenarioMeta is the static catalogue entry shown to users.
type ScenarioMeta struct {
	ID          Scenario
	Name        string
	Icon        string
	Description string
}

var scenarioCatalogue = map[Scenario]ScenarioMeta{
	ScenarioNormal:          {ScenarioNormal, "普通", "🏕️", "标准的野外生存环境"},
	ScenarioZombie:          {ScenarioZombie, "僵尸末日", "🧟", "僵尸病毒爆发，死者复活攻击活人"},
	ScenarioBiochemical:     {ScenarioBiochemical, "生化危机", "☣️", "生化武器泄露，环境被污染"},
	ScenarioNuclear:         {ScenarioNuclear, "核辐射", "☢️", "核事故导致大范围辐射污染"},
	ScenarioAlien:           {ScenarioAlien, "外星入侵", "👽", "外星生物入侵地球"},
	ScenarioNaturalDisaster: {ScenarioNaturalDisaster, "自然灾害", "🌪️", "地震、洪水、台风等自然灾害"},
}

// Meta returns the catalogue entry for s. Unknown scenarios get the normal entry.
func (s Scenario) Meta() ScenarioMeta {
	if m, ok := scenarioCatalogue[s]; ok {
		return m
	}
	return scenarioCatalogue[ScenarioNormal]
}

// ScenarioRecord is the stored description of a scenario.
type ScenarioRecord struct {
	Scenario              Scenario
	Name                  string
	Description           string
	BaseThreatLevel       int
	SpecialConsiderations string
	Equipment             []string
	Tips                  []string
}

// ThreatRecord is a stored threat belonging to a scenario.
type ThreatRecord struct {
	ID                  int64
	Scenario            Scenario
	Name                string
	Type                string
	BaseDangerLevel     int
	Description         string
	IdentificationSigns string
	Countermeasures     string
	AvoidanceTips       string
}

// AdjustedThreat pairs a stored threat with its context-adjusted danger level.
type AdjustedThreat struct {
	ThreatRecord
	AdjustedLevel int
}
