package locale

// Windows primary LANGID values for the locales the desktop clients ship
// dictionaries for. Sub-language bits select the regional variant; the
// fallback row (primary id only) covers the rest.
var langIDs = map[int]string{
	0x0409: "en_US",
	0x0809: "en_GB",
	0x0C09: "en_AU",
	0x1009: "en_CA",
	0x0419: "ru_RU",
	0x0422: "uk_UA",
	0x0423: "be_BY",
	0x0407: "de_DE",
	0x0C07: "de_AT",
	0x0807: "de_CH",
	0x040C: "fr_FR",
	0x0C0C: "fr_CA",
	0x040A: "es_ES",
	0x080A: "es_MX",
	0x0410: "it_IT",
	0x0416: "pt_BR",
	0x0816: "pt_PT",
	0x0413: "nl_NL",
	0x0415: "pl_PL",
	0x0405: "cs_CZ",
	0x041B: "sk_SK",
	0x040E: "hu_HU",
	0x0418: "ro_RO",
	0x0402: "bg_BG",
	0x041F: "tr_TR",
	0x0408: "el_GR",
	0x040B: "fi_FI",
	0x041D: "sv_SE",
	0x0406: "da_DK",
	0x0414: "nb_NO",
	0x040D: "he_IL",
	0x0401: "ar_SA",
	0x0439: "hi_IN",
	0x0425: "et_EE",
	0x0426: "lv_LV",
	0x0427: "lt_LT",
	0x0424: "sl_SI",
	0x041A: "hr_HR",
	0x0C1A: "sr_RS",
	0x042F: "mk_MK",
	0x042B: "hy_AM",
	0x0437: "ka_GE",
	0x043F: "kk_KZ",
	0x0443: "uz_UZ",
	0x042C: "az_AZ",
}

// primary LANGID (low 10 bits) fallbacks for sub-languages not listed above.
var primaryLangIDs = map[int]string{
	0x09: "en_US",
	0x19: "ru_RU",
	0x07: "de_DE",
	0x0C: "fr_FR",
	0x0A: "es_ES",
	0x10: "it_IT",
	0x16: "pt_PT",
	0x13: "nl_NL",
	0x15: "pl_PL",
	0x1F: "tr_TR",
	0x01: "ar_SA",
}

// LocaleFromLangId translates a numeric Windows language id into a locale
// tag. Unknown ids produce an empty string and are dropped by the caller.
func LocaleFromLangId(langID int) string {
	if lang, ok := langIDs[langID]; ok {
		return lang
	}
	if lang, ok := primaryLangIDs[langID&0x3FF]; ok {
		return lang
	}
	return ""
}
