package models

// InteractionSeverity 相互作用の重篤度
type InteractionSeverity string

const (
	SeverityContraindicated InteractionSeverity = "contraindicated"
	SeverityMajor           InteractionSeverity = "major"
	SeverityModerate        InteractionSeverity = "moderate"
	SeverityMinor           InteractionSeverity = "minor"
)

// Rank orders severities from most to least serious. Unknown values rank last.
func (s InteractionSeverity) Rank() int {
	switch s {
	case SeverityContraindicated:
		return 0
	case SeverityMajor:
		return 1
	case SeverityModerate:
		return 2
	case SeverityMinor:
		return 3
	}
	return 4
}

// Valid reports whether s is a known severity.
func (s InteractionSeverity) Valid() bool {
	return s.Rank() < 4
}

// WarningLevel 画面表示用の警告レベル
type WarningLevel string

const (
	WarningHigh   WarningLevel = "high"
	WarningMedium WarningLevel = "medium"
	WarningLow    WarningLevel = "low"
)

// Level 重篤度を表示用の警告レベルに変換
// contraindicated/major は high、moderate は medium、それ以外は low
func (s InteractionSeverity) Level() WarningLevel {
	switch s {
	case SeverityContraindicated, SeverityMajor:
		return WarningHigh
	case SeverityModerate:
		return WarningMedium
	default:
		return WarningLow
	}
}

// DrugInteraction 既知の薬物相互作用
type DrugInteraction struct {
	DrugA       string              `json:"drug_a" yaml:"drug_a"`
	DrugB       string              `json:"drug_b" yaml:"drug_b"`
	Severity    InteractionSeverity `json:"severity" yaml:"severity"`
	Description string              `json:"description" yaml:"description"`
	Management  string              `json:"management" yaml:"management"`
}

// InteractionCheckRequest POST /check/interactions のリクエスト
type InteractionCheckRequest struct {
	Drugs []string `json:"drugs"`
}

// InteractionWarning 検出された相互作用
// Severity は表示用のレベル、ClinicalSeverity はカタログ上の重篤度
type InteractionWarning struct {
	Drug1            string              `json:"drug1"`
	Drug2            string              `json:"drug2"`
	Drugs            []string            `json:"drugs"`
	Severity         WarningLevel        `json:"severity"`
	ClinicalSeverity InteractionSeverity `json:"clinical_severity"`
	Description      string              `json:"description"`
	Management       string              `json:"management"`
}

// InteractionCheckResponse POST /check/interactions のレスポンス
type InteractionCheckResponse struct {
	Safe         bool                 `json:"safe"`
	Warnings     []InteractionWarning `json:"warnings"`
	CheckedDrugs []string             `json:"checked_drugs"`
	CheckedAt    string               `json:"checked_at"`
}
