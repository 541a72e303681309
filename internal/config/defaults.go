package config

import "path/filepath"

// Reference asset layout.
const (
	DefaultAssetsDir   = "assets"
	DefaultVocabDir    = "assets/english-vocabulary"
	DefaultIndexSubdir = "index"

	TemplateTodoJS  = "todo-js"
	TemplateTodoCSS = "todo-css"
)

// Default returns the reference configuration: the todo script/style sections and the
// kaoyan/cet6 vocabulary banks.
func Default() *Config {
	cfg := &Config{Version: CurrentVersion}
	applyDefaults(cfg)
	return cfg
}

// DefaultSections returns the todo script and stylesheet sections.
func DefaultSections() []Section {
	return []Section{
		{
			Name:         "todo-js",
			Source:       filepath.Join(DefaultAssetsDir, "pomodoro-todo.js"),
			Output:       filepath.Join(DefaultAssetsDir, "todo.js"),
			StartMarker:  "// ==================== 待办清单 ====================",
			AnchorMarker: "function initTodo()",
			EndMarker:    "})();",
			Template:     TemplateTodoJS,
		},
		{
			Name:        "todo-css",
			Source:      filepath.Join(DefaultAssetsDir, "pomodoro-todo.css"),
			Output:      filepath.Join(DefaultAssetsDir, "todo.css"),
			StartMarker: "/* ==================== 待办清单样式 ==================== */",
			Template:    TemplateTodoCSS,
		},
	}
}

// DefaultBanks returns the reference graduate-entrance and CET-6 banks.
func DefaultBanks() []Bank {
	return []Bank{
		{ID: "kaoyan", Files: []string{"KaoYan_1.json", "KaoYan_2.json", "KaoYan_3.json"}},
		{ID: "cet6", Files: []string{"CET6_1.json", "CET6_2.json", "CET6_3.json"}},
	}
}

func applyDefaults(cfg *Config) {
	if len(cfg.Extract.Sections) == 0 {
		cfg.Extract.Sections = DefaultSections()
	}
	if cfg.Vocab.SourceDir == "" {
		cfg.Vocab.SourceDir = DefaultVocabDir
	}
	if cfg.Vocab.IndexDir == "" {
		cfg.Vocab.IndexDir = filepath.Join(cfg.Vocab.SourceDir, DefaultIndexSubdir)
	}
	if len(cfg.Vocab.Banks) == 0 {
		cfg.Vocab.Banks = DefaultBanks()
	}
}
