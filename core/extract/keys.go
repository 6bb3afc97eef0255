package extract

const (
	// DefaultTitleFallback is returned by ExtractTitle when no fallback is given.
	DefaultTitleFallback = "Untitled Project"

	// DefaultMaxDepth is the deepest nesting level inspected by key searches.
	// The root is level 0, so a value four containers down is out of reach.
	DefaultMaxDepth = 3

	// DefaultShortTagLimit is the rune count below which comma-free plain text
	// is accepted as a single tag.
	DefaultShortTagLimit = 50
)

// Title keys, checked tier by tier at each level before descending.
var (
	// TitlePrimaryKeys covers the spellings producers have used for a title,
	// including a Portuguese key, a common typo, and the week identifier and
	// theme-of-the-day keys of the schedule generator.
	TitlePrimaryKeys = []string{
		"titulo",
		"tittle",
		"title",
		"projectTitle",
		"videoTitle",
		"scriptTitle",
		"id_da_semana",
		"tema_dia",
	}

	// TitleSecondaryKeys are weaker, generic keys.
	TitleSecondaryKeys = []string{"name", "topic", "subject"}
)

// DescriptionKeys are searched as a single tier.
var DescriptionKeys = []string{
	"description",
	"generatedDescription",
	"desc",
	"generated_description",
	"resumo",
}

// TagKeys are searched as a single tier.
var TagKeys = []string{
	"hashtags",
	"generated_shorts_hashtags",
	"tags",
	"keywords",
	"generated_tiktok_hashtags",
}

// TitlePlaceholders are phrases that mark a title as not yet generated.
// Matching is case-insensitive and looks for the phrase anywhere in the title.
var TitlePlaceholders = []string{
	"untitled project",
	"projeto sem título",
	"sem título",
}

// PendingMarkers are prefixes that mark a title as still being generated.
var PendingMarkers = []string{"⏳"}

// Schedule documents carry their identifier beside a schedule body.
const (
	ScheduleBodyKey = "cronograma"
	ScheduleIDKey   = "id_da_semana"
)

// Keys used to synthesise a description from a script document.
var (
	HookKeys      = []string{"hook_falado", "hook", "gancho"}
	SceneKeys     = []string{"scenes", "cenas"}
	NarrationKeys = []string{"narration", "narracao", "narração"}
)

func cloneKeys(keys []string) []string {
	return append([]string(nil), keys...)
}
