package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"

	"github.com/jsamuelsen11/todotags/internal/platform/i18n"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.New("ja")
	if err != nil {
		t.Fatalf("New(ja) error = %v", err)
	}
	return tr
}

func TestSprintf(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	tests := []struct {
		name string
		lang language.Tag
		set  bool
		key  string
		args []any
		want string
	}{
		{"japanese", language.Japanese, true, "Todo created", nil, "Todoが作成されました"},
		{"english identity", language.English, true, "Todo created", nil, "Todo created"},
		{"default is japanese", language.Und, false, "Signed in", nil, "ログインしました"},
		{"format args", language.Japanese, true, "Signed in with %s", []any{"Google"}, "Googleアカウントでログインしました"},
		{"english format args", language.English, true, "Signed in with %s", []any{"Google"}, "Signed in with Google"},
		{"missing key falls back to source", language.Japanese, true, "Not in catalog", nil, "Not in catalog"},
		{"auth kind", language.Japanese, true, "Wrong password", nil, "パスワードが間違っています"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			if tt.set {
				ctx = i18n.WithLanguage(ctx, tt.lang)
			}
			if got := tr.Sprintf(ctx, tt.key, tt.args...); got != tt.want {
				t.Errorf("Sprintf(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	tests := []struct {
		name   string
		lang   string
		accept string
		want   language.Tag
	}{
		{"default", "", "", language.Japanese},
		{"query wins", "en", "ja", language.English},
		{"accept language", "", "en-US,en;q=0.9", language.English},
		{"accept weighted", "", "fr;q=0.5, ja;q=0.8", language.Japanese},
		{"unsupported falls back", "", "fr", language.Japanese},
		{"garbage query ignored", "!!", "en", language.English},
		{"regional variant", "ja-JP", "", language.Japanese},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tr.Resolve(tt.lang, tt.accept); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %v, want %v", tt.lang, tt.accept, got, tt.want)
			}
		})
	}
}

func TestNew_DefaultEnglish(t *testing.T) {
	t.Parallel()

	tr, err := i18n.New("en")
	if err != nil {
		t.Fatalf("New(en) error = %v", err)
	}
	if tr.Default() != language.English {
		t.Errorf("Default() = %v, want en", tr.Default())
	}
	if got := tr.Sprintf(context.Background(), "Todo created"); got != "Todo created" {
		t.Errorf("Sprintf() = %q, want source text", got)
	}
	if sup := tr.Supported(); len(sup) < 2 || sup[0] != language.English {
		t.Errorf("Supported() = %v, want default first", sup)
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fsys   fstest.MapFS
		locale string
	}{
		{"bad default", fstest.MapFS{}, "!!"},
		{"default without catalog", fstest.MapFS{}, "fr"},
		{"locale mismatch", fstest.MapFS{
			"locales/fr.yaml": {Data: []byte("locale: de\nmessages:\n  a: b\n")},
		}, "en"},
		{"missing messages", fstest.MapFS{
			"locales/fr.yaml": {Data: []byte("locale: fr\n")},
		}, "en"},
		{"non-string message", fstest.MapFS{
			"locales/fr.yaml": {Data: []byte("locale: fr\nmessages:\n  a:\n    b: c\n")},
		}, "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := i18n.NewFromFS(tt.fsys, tt.locale); err == nil {
				t.Error("NewFromFS() error = nil, want error")
			}
		})
	}
}

func TestNewFromFS_CustomLocale(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/fr.yaml": {Data: []byte("locale: fr\nmessages:\n  \"Todo created\": \"Tâche créée\"\n")},
	}
	tr, err := i18n.NewFromFS(fsys, "fr")
	if err != nil {
		t.Fatalf("NewFromFS() error = %v", err)
	}

	if got := tr.Sprintf(context.Background(), "Todo created"); got != "Tâche créée" {
		t.Errorf("Sprintf() = %q, want Tâche créée", got)
	}
}
