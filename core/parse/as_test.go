package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type script struct {
	Title string   `json:"titulo"`
	Tags  []string `json:"hashtags"`
}

func TestAs_Primitives(t *testing.T) {
	if got, err := As[string]("  kept as is ", ModeStrict); err != nil || got != "  kept as is " {
		t.Errorf("As[string]() = %q, %v", got, err)
	}
	if got, err := As[bool](" true\n", ModeStrict); err != nil || !got {
		t.Errorf("As[bool]() = %v, %v", got, err)
	}
	if got, err := As[int](" 42 ", ModeStrict); err != nil || got != 42 {
		t.Errorf("As[int]() = %v, %v", got, err)
	}
	if got, err := As[uint8]("255", ModeStrict); err != nil || got != 255 {
		t.Errorf("As[uint8]() = %v, %v", got, err)
	}
	if got, err := As[float64]("1.5", ModeStrict); err != nil || got != 1.5 {
		t.Errorf("As[float64]() = %v, %v", got, err)
	}

	if _, err := As[int]("forty-two", ModeLenient); err == nil {
		t.Error("As[int]() should fail on non-numeric text")
	}
	if _, err := As[int8]("300", ModeStrict); err == nil {
		t.Error("As[int8]() should fail on overflow")
	}
	if _, err := As[bool]("maybe", ModeStrict); err == nil {
		t.Error("As[bool]() should fail on invalid bool")
	}
}

func TestAs_Structured(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		mode    Mode
		want    script
		wantErr bool
	}{
		{
			name:  "valid object",
			input: `{"titulo": "Oração", "hashtags": ["#fe"]}`,
			mode:  ModeStrict,
			want:  script{Title: "Oração", Tags: []string{"#fe"}},
		},
		{
			name:  "fenced object",
			input: "```json\n{\"titulo\": \"Fenced\"}\n```",
			mode:  ModeStrict,
			want:  script{Title: "Fenced"},
		},
		{
			name:    "truncated strict",
			input:   `{"titulo": "Cut`,
			mode:    ModeStrict,
			wantErr: true,
		},
		{
			name:  "truncated balanced",
			input: `{"titulo": "Cut", "hashtags": ["#a"`,
			mode:  ModeTruncated,
			want:  script{Title: "Cut", Tags: []string{"#a"}},
		},
		{
			name:    "single quotes need lenient",
			input:   `{'titulo': 'Quoted'}`,
			mode:    ModeTruncated,
			wantErr: true,
		},
		{
			name:  "single quotes lenient",
			input: `{'titulo': 'Quoted'}`,
			mode:  ModeLenient,
			want:  script{Title: "Quoted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := As[script](tt.input, tt.mode)
			if (err != nil) != tt.wantErr {
				t.Fatalf("As() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("As() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAs_Map(t *testing.T) {
	got, err := As[map[string]int](`{"a": 1, "b": 2,}`, ModeLenient)
	if err != nil {
		t.Fatalf("As() error = %v", err)
	}
	if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, got); diff != "" {
		t.Errorf("As() mismatch (-want +got):\n%s", diff)
	}
}
