// Package rarity defines the canonical rarity vocabulary and the conversion
// table that maps historical free-text spellings onto it.
package rarity

import (
	"strings"
)

// Defined is the closed vocabulary of canonical rarity codes.
var Defined = []string{
	"N", "R", "SR", "UR", "SE", "PSE", "UL", "GR", "HR",
	"N-P", "SR-P", "UR-P", "SE-P", "P",
	"KC", "M", "CR", "EXSE", "20thSE", "QCSE",
	"NR",
	"HP",
	"GSE",
	"Ten Thousand Secret",
	"Ultra RED Ver.", "Ultra BLUE Ver.",
	"Secret BLUE Ver.",
	"Ultimate(Secret)",
	"Millennium-Ultra",
	"不明",
	"その他",
}

// Synonym maps one lowercase spelling to its canonical code.
type Synonym struct {
	Key  string
	Code string
}

// Synonyms is the ordered conversion table. Keys are lowercase; lookup is
// case-insensitive. A key never maps to more than one code.
var Synonyms = []Synonym{
	{"nomal", "N"}, {"normal", "N"}, {"ノーマル", "N"},
	{"rare", "R"}, {"レア", "R"}, {"（「キ」＝玉偏に幾） rare", "R"},
	{"super", "SR"}, {"スーパー", "SR"}, {"sr(スーパー)", "SR"}, {"スーパーレア", "SR"},
	{"ultra", "UR"}, {"ウルトラ", "UR"}, {"ur(ウルトラ)", "UR"}, {"ウルトラレア", "UR"},
	{"secret", "SE"}, {"シークレット", "SE"}, {"se(シークレット)", "SE"}, {"シークレットレア", "SE"},
	{"prismatic secret", "PSE"}, {"プリズマティックシークレット", "PSE"},
	{"pse(プリズマティックシークレット)", "PSE"}, {"プリズマティックシークレットレア", "PSE"},
	{"ultimate", "UL"}, {"アルティメット", "UL"}, {"ul(アルティメット)", "UL"},
	{"relief", "UL"}, {"レリーフ", "UL"}, {"アルティメットレア", "UL"},
	{"gold", "GR"}, {"ゴールド", "GR"}, {"ゴールドレア", "GR"},
	{"holographic", "HR"}, {"ホログラフィック", "HR"}, {"ホログラフィックレア", "HR"},
	{"normal parallel", "N-P"}, {"ノーマルパラレル", "N-P"}, {"n-parallel", "N-P"}, {"nパラ", "N-P"},
	{"kc rare", "KC"}, {"kcレア", "KC"}, {"kcr", "KC"},
	{"millennium", "M"}, {"ミレニアム", "M"}, {"ミレニアムレア", "M"},
	{"collectors", "CR"}, {"コレクターズ", "CR"}, {"コレクターズレア", "CR"},
	{"extra secret", "EXSE"}, {"エクストラシークレット", "EXSE"},
	{"ex-secret", "EXSE"}, {"エクストラシークレットレア", "EXSE"},
	{"20th secret", "20thSE"}, {"20thシークレット", "20thSE"},
	{"20thse(20thシークレット)", "20thSE"}, {"20thシークレットレア", "20thSE"},
	{"quarter century secret", "QCSE"}, {"クォーターセンチュリーシークレット", "QCSE"},
	{"クォーターセンチュリーシークレットレア", "QCSE"},
	{"n-rare", "NR"},
	{"holographic-parallel", "HP"},
	{"parallel", "P"},
	{"g-secret", "GSE"},
	{"ultra-parallel", "UR-P"}, {"ur-parallel", "UR-P"},
	{"super-parallel", "SR-P"},
	{"（エド・フェニックス仕様）", "その他"},
	{"（真帝王降臨）", "その他"},
	{"（オレンジ）", "その他"},
	{"（黄）", "その他"},
	{"（緑）", "その他"},
	{"レアリティ", "不明"},
	{"（「セン」＝玉偏に旋）", "その他"},
	{"（「こう」＝網頭に正） rare", "その他"},
}

// Canonicalize maps a free-text rarity label to its canonical code. Lookup is
// case-insensitive. Unknown labels are returned unchanged; canonicalization
// is best-effort, not enforcement of the closed vocabulary.
func Canonicalize(raw string) string {
	lower := strings.ToLower(raw)
	for _, s := range Synonyms {
		if s.Key == lower {
			return s.Code
		}
	}
	return raw
}

// IsDefined reports whether code is part of the canonical vocabulary.
func IsDefined(code string) bool {
	for _, d := range Defined {
		if d == code {
			return true
		}
	}
	return false
}
