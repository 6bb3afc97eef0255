package extract

import (
	"strings"
	"testing"
)

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		want     string
	}{
		{name: "empty", input: "", fallback: "FB", want: "FB"},
		{name: "plain text trimmed", input: "  A plain description.  ", fallback: "FB", want: "A plain description."},
		{name: "plain text is not filtered", input: "Untitled Project", fallback: "FB", want: "Untitled Project"},
		{name: "fenced bracketed text is plain", input: "```[draft]```", fallback: "FB", want: "```[draft]```"},
		{name: "whitespace-only match falls back", input: `{"description": "   "}`, fallback: "FB", want: "FB"},
		{name: "description key", input: `{"description": "D"}`, fallback: "FB", want: "D"},
		{name: "localized summary nested", input: `{"meta": {"resumo": "Resumo"}}`, fallback: "FB", want: "Resumo"},
		{name: "falsy match skipped", input: `{"desc": "", "generated_description": "G"}`, fallback: "FB", want: "G"},
		{name: "key list order", input: `{"desc": "Short", "description": "Long"}`, fallback: "FB", want: "Long"},
		{name: "non-string match stops search", input: `{"description": {"description": "inner"}}`, fallback: "FB", want: "FB"},
		{name: "encoded json match", input: `{"description": "{\"a\": 1}"}`, fallback: "FB", want: "FB"},
		{name: "broken json", input: `{"description": "never closed`, fallback: "FB", want: "FB"},
		{name: "no description key", input: `{"title": "only title"}`, fallback: "FB", want: "FB"},
		{name: "too deep", input: `{"a": {"b": {"c": {"d": {"desc": "x"}}}}}`, fallback: "FB", want: "FB"},
		{name: "array root", input: `[{"generatedDescription": "From array"}]`, fallback: "FB", want: "From array"},
		{name: "script has no description key", input: scriptDocument, fallback: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDescription(tt.input, tt.fallback); got != tt.want {
				t.Errorf("ExtractDescription(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractDescription_DefaultFallbackIsEmpty(t *testing.T) {
	if got := ExtractDescription("{broken"); got != "" {
		t.Errorf("ExtractDescription() = %q, want empty", got)
	}
}

func TestExtractor_DescriptionSynthesis(t *testing.T) {
	e := New(WithSynthesis(true))

	r := e.DescriptionResult(scriptDocument, "FB")
	if r.Outcome != OutcomeSynthesized {
		t.Fatalf("Outcome = %v, want %v (value %q)", r.Outcome, OutcomeSynthesized, r.Value)
	}
	if !strings.HasPrefix(r.Value, "Senhor, abençoa a semana que vai começar. Que cada passo seja guiado por Ti.") {
		t.Errorf("Value = %q, want the hook merged with the first narration", r.Value)
	}
	if strings.Count(r.Value, "Senhor, abençoa") != 1 {
		t.Errorf("Value = %q, want the hook only once", r.Value)
	}
	if !strings.HasSuffix(r.Value, "notícias boas.") {
		t.Errorf("Value = %q, want the last narration at the end", r.Value)
	}

	if got := e.Description(`{"description": "Explicit"}`, "FB"); got != "Explicit" {
		t.Errorf("Description() = %q, want explicit key to win over synthesis", got)
	}
	if got := e.Description(`{"title": "x"}`, "FB"); got != "FB" {
		t.Errorf("Description() = %q, want FB when nothing can be synthesized", got)
	}
}

func TestExtractor_DescriptionSynthesisFromGeneratedScript(t *testing.T) {
	const generated = `{"titulo":"Oração: Bênção da Semana","hook_falado":"Senhor, abençoa a semana que vai começar.","scenes":[{"scene":1,"visual":"Jesus de pé com as mãos estendidas sobre uma estrada ou caminho (5s).","narration":"Senhor, abençoa a semana que vai começar. Que cada passo seja guiado por Ti.","visualDescription":"Jesus de pé com as mãos estendidas sobre uma estrada ou caminho (5s).","sceneNumber":1},{"scene":2,"visual":"Jesus abrindo portas que estavam fechadas (5s).","narration":"Abre as portas de emprego, de cura e de oportunidades.","visualDescription":"Jesus abrindo portas que estavam fechadas (5s).","sceneNumber":2},{"scene":3,"visual":"Jesus colocando um escudo invisível à frente da câmera (5s).","narration":"Livra-nos de todo mal, de todo laço e de toda palavra contrária.","visualDescription":"Jesus colocando um escudo invisível à frente da câmera (5s).","sceneNumber":3},{"scene":4,"visual":"Céu amanhecendo com cores vivas (5s).","narration":"Que seja uma semana de vitórias surpreendentes e notícias boas.","visualDescription":"Céu amanhecendo com cores vivas (5s).","sceneNumber":4},{"scene":5,"visual":"Jesus sorrindo e dando um 'joinha' ou sinal positivo (6s).","narration":"Eu creio. Você crê? Digite 'Eu creio' e receba.","visualDescription":"Jesus sorrindo e dando um 'joinha' ou sinal positivo (6s).","sceneNumber":5}],"topic":"Oração: Bênção da Semana","_folderName":"Semana 23 29 Dez 2025 Natal OraçõEsAbertas","_subFolderName":"Domingo"}`

	e := New(WithSynthesis(true))
	if got := e.Title(generated, "FB"); got != "Oração: Bênção da Semana" {
		t.Errorf("Title() = %q, want the titulo value", got)
	}
	r := e.DescriptionResult(generated, "")
	if r.Outcome != OutcomeSynthesized {
		t.Fatalf("Outcome = %v, want %v", r.Outcome, OutcomeSynthesized)
	}
	if !strings.HasPrefix(r.Value, "Senhor, abençoa a semana que vai começar") {
		t.Errorf("Value = %q, want it to open with the spoken hook", r.Value)
	}
	if !strings.HasSuffix(r.Value, "Digite 'Eu creio' e receba.") {
		t.Errorf("Value = %q, want the last scene narration at the end", r.Value)
	}
}

func TestExtractor_DescriptionFenceUnwrap(t *testing.T) {
	e := New(WithFenceUnwrap(true))
	if got := e.Description("```json\n{\"description\": \"Inside\"}\n```", "FB"); got != "Inside" {
		t.Errorf("Description() = %q, want the fenced document's description", got)
	}
	if got := e.Description("```[draft]```", "FB"); got != "```[draft]```" {
		t.Errorf("Description() = %q, want unparsable fence kept as text", got)
	}
}

func TestExtractor_DescriptionMarkdown(t *testing.T) {
	html := `{"description": "<p>Hello <strong>world</strong></p>"}`

	if got := New().Description(html, "FB"); got != "<p>Hello <strong>world</strong></p>" {
		t.Errorf("Description() without markdown = %q, want HTML unchanged", got)
	}

	got := New(WithMarkdown(true)).Description(html, "FB")
	if strings.Contains(got, "<p>") || !strings.Contains(got, "**world**") {
		t.Errorf("Description() with markdown = %q, want converted markdown", got)
	}

	plain := "5 < 6 and 7 > 3"
	if got := New(WithMarkdown(true)).Description(plain, "FB"); got != plain {
		t.Errorf("Description() = %q, want text without tags unchanged", got)
	}
}
