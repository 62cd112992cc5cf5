package content

import (
	"bytes"
	"html/template"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/chroma/v2/styles"
)

var lexerCache sync.Map // language -> chroma.Lexer

func getLexer(language string) chroma.Lexer {
	if cached, ok := lexerCache.Load(language); ok {
		return cached.(chroma.Lexer)
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	lexerCache.Store(language, lexer)
	return lexer
}

// HighlightHTML renders a snippet as class-annotated HTML. The markup does not
// depend on the theme; HighlightCSS supplies the colors.
func HighlightHTML(s Snippet) template.HTML {
	iterator, err := getLexer(s.Language).Tokenise(nil, s.Code)
	if err != nil {
		return template.HTML("<pre><code>" + template.HTMLEscapeString(s.Code) + "</code></pre>")
	}
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.Format(&buf, styles.Fallback, iterator); err != nil {
		return template.HTML("<pre><code>" + template.HTMLEscapeString(s.Code) + "</code></pre>")
	}
	return template.HTML(buf.String())
}

// HighlightCSS returns the chroma stylesheet for styleName with every rule
// scoped under scope (for example "html.dark").
func HighlightCSS(styleName, scope string) (string, error) {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	var buf bytes.Buffer
	if err := chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(&buf, style); err != nil {
		return "", err
	}
	return strings.ReplaceAll(buf.String(), ".chroma", scope+" .chroma"), nil
}

// HighlightTerminal renders a snippet with 256-color escapes in styleName.
func HighlightTerminal(s Snippet, styleName string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, s.Code, s.Language, "terminal256", styleName); err != nil {
		return s.Code
	}
	return buf.String()
}
