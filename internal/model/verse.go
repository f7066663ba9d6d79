package model

type Verse struct {
	Reference       string `json:"reference"`
	Text            string `json:"text"`
	TranslationID   string `json:"translation_id"`
	TranslationName string `json:"translation_name"`
}

type Translation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Translations is the closed set of translation codes offered to readers.
var Translations = []Translation{
	{ID: "web", Name: "World English Bible (WEB)"},
	{ID: "kjv", Name: "King James Version (KJV)"},
	{ID: "asv", Name: "American Standard Version (ASV)"},
	{ID: "bbe", Name: "Bible in Basic English (BBE)"},
	{ID: "darby", Name: "Darby Bible (DARBY)"},
	{ID: "dra", Name: "Douay-Rheims 1899 American Edition (DRA)"},
	{ID: "ylt", Name: "Young's Literal Translation (YLT)"},
	{ID: "almeida", Name: "João Ferreira de Almeida (Portuguese)"},
	{ID: "rccv", Name: "Romanian Corrected Cornilescu Version (Romanian)"},
	{ID: "clementine", Name: "Clementine Latin Vulgate (Latin)"},
	{ID: "cherokee", Name: "Cherokee New Testament (Cherokee)"},
}

const DefaultTranslation = "web"
