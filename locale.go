package linebreak

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// LocaleCriterion adapts the resolution of the ambiguous AI class to the
// calling environment's language, the way East Asian Width consumers
// choose between a narrow and a wide interpretation of the Ambiguous
// category depending on script. Unlike ResolveDefault's fixed AI -> AL,
// a LocaleCriterion resolves AI to ID when the detected or supplied locale
// is East Asian.
type LocaleCriterion struct {
	EastAsian bool
	Script    language.Script
	Locale    string
}

// DetectLocale builds a LocaleCriterion from the process environment
// (LANG/LC_ALL and friends), falling back to en-US when detection fails.
func DetectLocale() *LocaleCriterion {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
	} else {
		T().Infof("linebreak detected user locale %v", userLocale)
	}
	return localeFromTag(userLocale)
}

// LocaleFromString builds a LocaleCriterion from an explicit BCP 47 tag,
// for callers that already know their target locale and do not want
// environment auto-detection.
func LocaleFromString(tag string) *LocaleCriterion {
	return localeFromTag(tag)
}

func localeFromTag(tag string) *LocaleCriterion {
	lang := language.Make(tag)
	script, _ := lang.Script()
	return &LocaleCriterion{
		EastAsian: isEastAsianScript(script, lang),
		Script:    script,
		Locale:    tag,
	}
}

var eastAsianScripts = map[string]bool{
	"Hani": true, "Hans": true, "Hant": true,
	"Hang": true, "Hira": true, "Kana": true,
	"Bopo": true,
}

var eastAsianMatcher = language.NewMatcher([]language.Tag{
	language.Chinese,
	language.Japanese,
	language.Korean,
})

func isEastAsianScript(script language.Script, lang language.Tag) bool {
	if eastAsianScripts[script.String()] {
		return true
	}
	_, _, confidence := eastAsianMatcher.Match(lang)
	return confidence != language.No
}

// Criterion adapts this locale into a Criterion usable with WithCriterion:
// it defers to ResolveDefault for every class except AI, which resolves to
// ID (treated as a wide ideograph) under an East Asian locale and to AL
// otherwise.
func (lc *LocaleCriterion) Criterion() Criterion {
	if lc == nil {
		return ResolveDefault
	}
	return func(raw LineBreakClass, gc GeneralCategory) LineBreakClass {
		if raw == AI {
			if lc.EastAsian {
				return ID
			}
			return AL
		}
		return ResolveDefault(raw, gc)
	}
}
