package resolve

// SuffixRule rewrites a word ending: a word ending in Suffix is retried with
// that ending replaced by Replacement.
type SuffixRule struct {
	Suffix      string
	Replacement string
}

// suffixRules are tried in order; the first rule whose candidate resolves
// wins. A rule applies only when at least three characters precede the
// suffix, which keeps short words like "does" or "best" intact.
var suffixRules = []SuffixRule{
	{"ies", "y"},
	{"ied", "y"},
	{"ing", ""},
	{"ed", ""},
	{"ers", "er"},
	{"est", ""},
	{"ness", ""},
	{"ment", ""},
	{"ments", "ment"},
	{"ful", ""},
	{"less", ""},
	{"ly", ""},
	{"s", ""},
}

// americanToBritish maps American spellings to the British forms under which
// the corpora index them.
var americanToBritish = map[string]string{
	"analyze":      "analyse",
	"analyzing":    "analysing",
	"apologize":    "apologise",
	"apologizing":  "apologising",
	"behavior":     "behaviour",
	"behavioral":   "behavioural",
	"catalog":      "catalogue",
	"center":       "centre",
	"centered":     "centred",
	"centimeter":   "centimetre",
	"color":        "colour",
	"colored":      "coloured",
	"colorful":     "colourful",
	"defense":      "defence",
	"favorite":     "favourite",
	"honor":        "honour",
	"honored":      "honoured",
	"humor":        "humour",
	"kilometer":    "kilometre",
	"labor":        "labour",
	"liter":        "litre",
	"meter":        "metre",
	"millimeter":   "millimetre",
	"offense":      "offence",
	"organize":     "organise",
	"organizing":   "organising",
	"realize":      "realise",
	"realizing":    "realising",
	"recognize":    "recognise",
	"recognizing":  "recognising",
	"traveler":     "traveller",
	"traveling":    "travelling",
	"neighbor":     "neighbour",
	"neighborhood": "neighbourhood",
	"neighboring":  "neighbouring",
	"theater":      "theatre",
	"gray":         "grey",
	"rumor":        "rumour",
	"license":      "licence",
	"licensing":    "licencing",
	"cooperation":  "co-operation",
	"makeup":       "make-up",
	"photocopy":    "photo-copy",
}

// manualTranslations are curated translations consulted before any corpus.
// They cover abbreviations and modern vocabulary the corpora lack, plus a
// few words whose first corpus article is unusable.
var manualTranslations = map[string]string{
	"internet":      "интернет",
	"a.m.":          "до полудня; время от полуночи до полудня",
	"activist":      "активист; общественный деятель",
	"anymore":       "(больше) уже не; более не",
	"boyfriend":     "парень; молодой человек",
	"businesswoman": "деловая женщина; бизнесвумен",
	"cd":            "компакт-диск",
	"tv":            "телевизор; телевидение",
	"ok":            "хорошо; согласен",
	"web site":      "веб-сайт; интернет-страница",
	"e.g.":          "например",
	"girlfriend":    "девушка; подруга",
	"i.e.":          "то есть; иначе говоря",
	"makeup":        "макияж; грим; состав",
	"online":        "онлайн; через интернет",
	"p.m.":          "после полудня; время после полудня",
	"photocopy":     "ксерокопия; делать копию",
	"software":      "программное обеспечение",
	"specifically":  "конкретно; специально",
	"cooperation":   "сотрудничество; совместная работа",
	"neighborhood":  "окрестность; район; соседство",
	"email":         "электронная почта; отправлять электронное сообщение",
	"entertainer":   "артист-эстрадник; развлекатель",
}
