package usecase

import (
	"regexp"

	"github.com/sahulat/backend/internal/domain"
)

// The extraction rule tables are data, not code: each locale carries a
// complete, independent table per field, so adding a locale never touches the
// extraction algorithm. Ordering matters everywhere: rules are tried in
// declared priority order, and for enum fields the first matching group wins
// even when later groups would also match (e.g. "female" contains "male").

// enumGroup binds one enum value to its ordered match patterns.
type enumGroup struct {
	value    string
	patterns []*regexp.Regexp
}

// goalRule binds a canonical goal token to its pattern. Every goal rule is
// tested independently; matches are collected, not first-match.
type goalRule struct {
	token   string
	pattern *regexp.Regexp
}

// localeRules is the complete rule table for one locale.
type localeRules struct {
	age          []*regexp.Regexp
	gender       []enumGroup
	education    []enumGroup
	location     []*regexp.Regexp
	goals        []goalRule
	income       []enumGroup
	occupation   []*regexp.Regexp
	familySize   []*regexp.Regexp
	disabilities []*regexp.Regexp
}

var englishRules = &localeRules{
	age: []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,2})\s*(?:years?\s*old|y\.?o\.?)`),
		regexp.MustCompile(`(?i)age\s*(?:is\s*)?(\d{1,2})`),
		regexp.MustCompile(`(?i)(\d{1,2})\s*(?:years?)`),
	},
	gender: []enumGroup{
		{value: "male", patterns: compileAll(`(?i)male`, `(?i)\bman\b`, `(?i)\bboy\b`, `(?i)\bhe\b`, `(?i)\bhis\b`)},
		{value: "female", patterns: compileAll(`(?i)female`, `(?i)\bwoman\b`, `(?i)\bgirl\b`, `(?i)\bshe\b`, `(?i)\bher\b`)},
		{value: "other", patterns: compileAll(`(?i)\bother\b`, `(?i)non-binary`, `(?i)transgender`)},
	},
	education: []enumGroup{
		{value: "none", patterns: compileAll(`(?i)no\s*education`, `(?i)illiterate`, `(?i)never\s*went\s*to\s*school`)},
		{value: "primary", patterns: compileAll(`(?i)primary`, `(?i)elementary`, `(?i)grade\s*[1-5]`)},
		{value: "secondary", patterns: compileAll(`(?i)secondary`, `(?i)middle\s*school`, `(?i)grade\s*[6-8]`)},
		{value: "high_school", patterns: compileAll(`(?i)high\s*school`, `(?i)matric`, `(?i)grade\s*(?:9|10|11|12)`)},
		{value: "bachelor", patterns: compileAll(`(?i)bachelor`, `(?i)b\.?s\.?\b`, `(?i)b\.?a\.?\b`, `(?i)undergraduate`)},
		{value: "master", patterns: compileAll(`(?i)master`, `(?i)m\.?s\.?\b`, `(?i)m\.?a\.?\b`, `(?i)graduate`)},
		{value: "phd", patterns: compileAll(`(?i)ph\.?d`, `(?i)doctorate`, `(?i)doctor`)},
		{value: "vocational", patterns: compileAll(`(?i)vocational`, `(?i)diploma`, `(?i)certificate`)},
		{value: "technical", patterns: compileAll(`(?i)technical`, `(?i)polytechnic`, `(?i)engineering`)},
	},
	location: []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:from|live\s*in|located\s*in)\s+([A-Za-z ]+(?:city|province|state|country)?)`),
		regexp.MustCompile(`(?i)([A-Za-z ]+(?:city|province|state|country))`),
	},
	goals: []goalRule{
		{token: "scholarship", pattern: regexp.MustCompile(`(?i)scholarship`)},
		{token: "grant", pattern: regexp.MustCompile(`(?i)grant`)},
		{token: "loan", pattern: regexp.MustCompile(`(?i)loan`)},
		{token: "education", pattern: regexp.MustCompile(`(?i)education`)},
		{token: "study", pattern: regexp.MustCompile(`(?i)study`)},
		{token: "university", pattern: regexp.MustCompile(`(?i)university`)},
		{token: "skill", pattern: regexp.MustCompile(`(?i)skill`)},
		{token: "training", pattern: regexp.MustCompile(`(?i)training`)},
		{token: "job", pattern: regexp.MustCompile(`(?i)\bjob\b`)},
		{token: "employment", pattern: regexp.MustCompile(`(?i)employment`)},
		{token: "business", pattern: regexp.MustCompile(`(?i)business`)},
		{token: "startup", pattern: regexp.MustCompile(`(?i)startup`)},
		{token: "housing", pattern: regexp.MustCompile(`(?i)housing`)},
		{token: "home", pattern: regexp.MustCompile(`(?i)\bhome\b`)},
		{token: "medical", pattern: regexp.MustCompile(`(?i)medical`)},
		{token: "health", pattern: regexp.MustCompile(`(?i)health`)},
		{token: "disability", pattern: regexp.MustCompile(`(?i)disability`)},
	},
	income: []enumGroup{
		{value: "low", patterns: compileAll(`(?i)low\s*income`, `(?i)\bpoor\b`, `(?i)struggling`, `(?i)minimum\s*wage`)},
		{value: "medium", patterns: compileAll(`(?i)medium\s*income`, `(?i)average`, `(?i)middle\s*class`)},
		{value: "high", patterns: compileAll(`(?i)high\s*income`, `(?i)well\s*off`, `(?i)affluent`)},
		{value: "very_high", patterns: compileAll(`(?i)very\s*high\s*income`, `(?i)\brich\b`, `(?i)wealthy`)},
	},
	occupation: []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:work\s*as|job\s*is|occupation\s*is)\s*(?:an?\s+)?([A-Za-z ]+)`),
		regexp.MustCompile(`(?i)(?:am\s+an?|is\s+an?)\s+([A-Za-z ]+)`),
	},
	familySize: []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*(?:family\s*members?|people\s*in\s*family|children)`),
		regexp.MustCompile(`(?i)family\s*of\s*(\d+)`),
	},
	disabilities: compileAll(`(?i)disability`, `(?i)disabled`, `(?i)wheelchair`, `(?i)\bblind\b`, `(?i)\bdeaf\b`, `(?i)mobility`),
}

var urduRules = &localeRules{
	age: []*regexp.Regexp{
		regexp.MustCompile(`(\d{1,2})\s*(?:سال|سالہ)`),
		regexp.MustCompile(`عمر\s*(?:ہے\s*)?(\d{1,2})`),
	},
	gender: []enumGroup{
		{value: "male", patterns: compileAll(`مرد`, `لڑکا`)},
		{value: "female", patterns: compileAll(`عورت`, `لڑکی`)},
		{value: "other", patterns: compileAll(`دیگر`, `غیر\s*ثنائی`)},
	},
	education: []enumGroup{
		{value: "none", patterns: compileAll(`کوئی\s*تعلیم\s*نہیں`, `ان\s*پڑھ`)},
		{value: "primary", patterns: compileAll(`پرائمری`, `ابتدائی`, `کلاس\s*[1-5]`)},
		{value: "secondary", patterns: compileAll(`ثانوی`, `مڈل`, `کلاس\s*[6-8]`)},
		{value: "high_school", patterns: compileAll(`ہائی\s*اسکول`, `میٹرک`, `کلاس\s*(?:9|10|11|12)`)},
		{value: "bachelor", patterns: compileAll(`بیچلر`, `انڈرگریجویٹ`)},
		{value: "master", patterns: compileAll(`ماسٹر`, `پوسٹ\s*گریجویٹ`)},
		{value: "phd", patterns: compileAll(`پی\s*ایچ\s*ڈی`, `ڈاکٹریٹ`)},
		{value: "vocational", patterns: compileAll(`ووکیشنل`, `ڈپلومہ`, `سرٹیفکیٹ`)},
		{value: "technical", patterns: compileAll(`ٹیکنیکل`, `انجینئرنگ`)},
	},
	location: []*regexp.Regexp{
		regexp.MustCompile(`(?:رہتا\s*ہوں|رہتی\s*ہوں|سے|میں)\s+([\p{Arabic} ]+)`),
		regexp.MustCompile(`([\p{Arabic} ]+(?:شہر|صوبہ|ملک))`),
	},
	goals: []goalRule{
		{token: "scholarship", pattern: regexp.MustCompile(`وظیفہ`)},
		{token: "grant", pattern: regexp.MustCompile(`گرانٹ`)},
		{token: "loan", pattern: regexp.MustCompile(`قرضہ`)},
		{token: "education", pattern: regexp.MustCompile(`تعلیم`)},
		{token: "study", pattern: regexp.MustCompile(`پڑھائی`)},
		{token: "university", pattern: regexp.MustCompile(`یونیورسٹی`)},
		{token: "skill", pattern: regexp.MustCompile(`ہنر`)},
		{token: "training", pattern: regexp.MustCompile(`تربیت`)},
		{token: "employment", pattern: regexp.MustCompile(`ملازمت`)},
		{token: "business", pattern: regexp.MustCompile(`کاروبار`)},
		{token: "home", pattern: regexp.MustCompile(`گھر`)},
		{token: "health", pattern: regexp.MustCompile(`صحت`)},
		{token: "disability", pattern: regexp.MustCompile(`معذوری`)},
	},
	income: []enumGroup{
		{value: "low", patterns: compileAll(`کم\s*آمدنی`, `غریب`, `مفلس`)},
		{value: "medium", patterns: compileAll(`درمیانی\s*آمدنی`, `اوسط`)},
		{value: "high", patterns: compileAll(`زیادہ\s*آمدنی`, `امیر`)},
		{value: "very_high", patterns: compileAll(`بہت\s*زیادہ\s*آمدنی`, `مالدار`)},
	},
	occupation: []*regexp.Regexp{
		regexp.MustCompile(`(?:کام\s*کرتا\s*ہوں|کام\s*کرتی\s*ہوں|ملازمت\s*ہے)\s+([\p{Arabic} ]+)`),
	},
	familySize: []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*(?:خاندان|افراد|بچے)`),
		regexp.MustCompile(`خاندان\s*میں\s*(\d+)`),
	},
	disabilities: compileAll(`معذوری`, `معذور`, `اندھا`, `بہرا`, `چلنے\s*میں\s*مشکل`),
}

// rulesByLocale maps each supported locale to its rule table.
var rulesByLocale = map[domain.Locale]*localeRules{
	domain.LocaleEnglish: englishRules,
	domain.LocaleUrdu:    urduRules,
}

// suggestionMessages holds the localized missing-field prompts, in the fixed
// order age, education, location, goals.
var suggestionMessages = map[domain.Locale][4]string{
	domain.LocaleEnglish: {
		"Please provide your age",
		"Please mention your education level",
		"Please provide your location",
		"Please mention your goals (scholarship, job, etc.)",
	},
	domain.LocaleUrdu: {
		"براہ کرم اپنی عمر بتائیں",
		"براہ کرم اپنی تعلیمی سطح بتائیں",
		"براہ کرم اپنا مقام بتائیں",
		"براہ کرم اپنے اہداف بتائیں (وظیفہ، ملازمت، وغیرہ)",
	},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}
