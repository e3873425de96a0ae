package db_models

// Deity mirrors the Deity enum in Postgres.
type Deity string

const (
	DeityShiva   Deity = "Shiva"
	DeityVishnu  Deity = "Vishnu"
	DeityKrishna Deity = "Krishna"
	DeityRama    Deity = "Rama"
	DeityGanesh  Deity = "Ganesh"
	DeityHanuman Deity = "Hanuman"
	DeityShakti  Deity = "Shakti"
	DeityDurga   Deity = "Durga"
	DeityKali    Deity = "Kali"
	DeityLakshmi Deity = "Lakshmi"
)

var Deities = []Deity{
	DeityShiva, DeityVishnu, DeityKrishna, DeityRama, DeityGanesh,
	DeityHanuman, DeityShakti, DeityDurga, DeityKali, DeityLakshmi,
}

func (d Deity) Valid() bool {
	for _, known := range Deities {
		if d == known {
			return true
		}
	}
	return false
}

// Sampradaya mirrors the Sampradaya enum in Postgres.
type Sampradaya string

const (
	SampradayaRadhaVallabhi Sampradaya = "RadhaVallabhi"
	SampradayaVaishnava     Sampradaya = "Vaishnava"
	SampradayaShaiva        Sampradaya = "Shaiva"
	SampradayaShakta        Sampradaya = "Shakta"
	SampradayaGanapatya     Sampradaya = "Ganapatya"
	SampradayaSwaminarayan  Sampradaya = "Swaminarayan"
)

var Sampradayas = []Sampradaya{
	SampradayaRadhaVallabhi, SampradayaVaishnava, SampradayaShaiva,
	SampradayaShakta, SampradayaGanapatya, SampradayaSwaminarayan,
}

func (s Sampradaya) Valid() bool {
	for _, known := range Sampradayas {
		if s == known {
			return true
		}
	}
	return false
}

// Theme is the client color scheme stored per user.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
