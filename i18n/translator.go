package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "letter" or "position").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "bad_pattern":
			return "パターンが不正です"
		case "invalid_digits":
			return "桁数指定が不正です"
		case "nil_component":
			return "要素が指定されていません"
		case "incomplete_alternatives":
			return "代替パーサ配列が不完全です"
		case "not_printer":
			return "印字をサポートしていません"
		case "not_parser":
			return "解析をサポートしていません"
		case "parse_error":
			return "解析エラー"
		case "truncated":
			return "入力が残っています"
		case "unsupported_field":
			return "サポートされないフィールドです"
		}
	default: // "en"
		switch code {
		case "bad_pattern":
			return "illegal pattern component"
		case "invalid_digits":
			return "invalid digit count"
		case "nil_component":
			return "no component supplied"
		case "incomplete_alternatives":
			return "incomplete parser array"
		case "not_printer":
			return "printing not supported"
		case "not_parser":
			return "parsing not supported"
		case "parse_error":
			return "parse error"
		case "truncated":
			return "unparsed text remains"
		case "unsupported_field":
			return "unsupported field"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T translates a code through the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
