// Package i18n localizes the human-readable text a command-line tool emits:
// option descriptions, validation messages, help output.
//
// A Translator resolves dot-separated keys against per-language catalogs
// (parsed from YAML or JSON) and formats the resulting template with
// fmt.Sprintf-style arguments. The language for the current process is
// detected from the environment (OPTKIT_LANG, LC_ALL, LC_MESSAGES, LANG);
// when a key has no translation the Translator falls back to the default
// language and finally to the key itself.
package i18n
