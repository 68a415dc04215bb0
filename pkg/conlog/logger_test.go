package conlog

import (
	"errors"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextOnly(t *testing.T) {
	f, _ := newPlain(t)

	assert.Equal(t, "hello", f.Info().Text("hello").String())
	assert.Equal(t, "", f.Info().String())
}

func TestPrefixAndText(t *testing.T) {
	f, _ := newPlain(t)

	out := f.Info().Prefix("INFO").Text("Hello").String()
	assert.Equal(t, "INFO Hello", out)
	assert.NotContains(t, out, "[[")
	assert.NotContains(t, out, "]]")
	assert.Less(t, strings.Index(out, "INFO"), strings.Index(out, "Hello"))
}

func TestTextArguments(t *testing.T) {
	f, _ := newPlain(t)

	var missing *int
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"mixed", []any{"port", 8080, true}, "port 8080 true"},
		{"nil", []any{"value", nil}, "value null"},
		{"nil pointer", []any{missing}, "null"},
		{"error", []any{errors.New("boom")}, "boom"},
		{"float", []any{1.5}, "1.5"},
		{"styles are not printed", []any{"warned", Styles{"red", "bold"}}, "warned"},
		{"empty", nil, ""},
		{"unicode", []any{"héllo", "世界"}, "héllo 世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Plain().Text(tt.args...).String())
		})
	}
}

func TestTextStylesArgument(t *testing.T) {
	f, _ := newPlain(t)

	l := f.Info().Text("x", Styles{"red", "bold"})
	assert.Equal(t, []string{"red", "bold"}, l.ToObject().Styles)

	assert.Equal(t, []string{"blue"}, f.Info().Text("x").ToObject().Styles)
	assert.Equal(t, []string{"green"}, f.Info().Styles("green").Text("x").ToObject().Styles)
}

func TestDetailAndData(t *testing.T) {
	f, _ := newPlain(t)

	out := f.Info().Text("saved").Detail("3 rows").Data(map[string]int{"rows": 3}).String()
	assert.Equal(t, "saved\n3 rows\n{\n  \"rows\": 3\n}", out)

	assert.Equal(t, "plain string", f.Info().Data("plain string").String())
	assert.Equal(t, "", f.Info().Data(nil).String())
}

type node struct {
	Name string
	Next *node
}

func TestDataUnserializable(t *testing.T) {
	f, _ := newPlain(t)

	loop := &node{Name: "a"}
	loop.Next = loop

	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	values := map[string]any{
		"pointer cycle": loop,
		"map cycle":     cyclic,
		"channel":       make(chan int),
		"func":          func() {},
	}

	for name, v := range values {
		t.Run(name, func(t *testing.T) {
			var out string
			require.NotPanics(t, func() { out = f.Info().Text("payload").Data(v).String() })
			assert.NotEmpty(t, out)
			assert.Contains(t, out, UnserializableData)
		})
	}
}

func TestHighlightMarkers(t *testing.T) {
	for _, color := range []bool{false, true} {
		f, _ := newPlain(t, WithColor(color))

		out := f.Info().Text("[[x]]").String()
		assert.NotContains(t, out, "[[x]]")
		assert.Contains(t, out, "x")

		out = pterm.RemoveColorFromString(f.Info().Text("see [[docs]] now").Detail("[[a]] and [[b]]").String())
		assert.Equal(t, "see docs now\na and b", out)
	}

	f, _ := newPlain(t)
	assert.Equal(t, "[[open and [single]", f.Info().Text("[[open and [single]").String())
}

func TestValidity(t *testing.T) {
	f, buf := newPlain(t)

	l := f.Info().Text("hidden").Valid(false)
	l.Print()
	assert.Empty(t, buf.String())
	assert.Equal(t, "", l.String())
	assert.False(t, l.ToObject().Valid)

	l.Print(true)
	assert.Equal(t, "hidden\n", buf.String())

	buf.Reset()
	f.Info().Text("shown").Valid().Print(false)
	assert.Empty(t, buf.String())

	f.Info().Text("shown").Valid(false).Valid().Print()
	assert.Equal(t, "shown\n", buf.String())
}

func TestStringIsIdempotentAndSilent(t *testing.T) {
	f, buf := newPlain(t)

	l := f.Info().Prefix("P").Text("t").Detail("d").Time().AppendDivider()
	assert.Equal(t, l.String(), l.String())
	assert.Empty(t, buf.String())
}

func TestTime(t *testing.T) {
	f, _ := newPlain(t)

	assert.Equal(t, "10:30:45 INFO hello", f.Info().Time().Prefix("INFO").Text("hello").String())
	assert.Equal(t, "hello", f.Info().Time().Time(false).Text("hello").String())
}

func TestDividers(t *testing.T) {
	f, _ := newPlain(t)
	dashes := strings.Repeat("-", 40)

	t.Run("prepend and append", func(t *testing.T) {
		out := f.Info().PrependDivider().Text("body").AppendDivider(NewDivider("=", 3)).String()
		assert.Equal(t, dashes+"\nbody\n===", out)
	})

	t.Run("prepend only is one line", func(t *testing.T) {
		assert.Len(t, strings.Split(f.Info().PrependDivider().String(), "\n"), 1)
	})

	t.Run("single divider wins", func(t *testing.T) {
		out := f.Info().Prefix("P").Text("ignored").Data(1).Divider(NewDivider("*")).String()
		assert.Equal(t, strings.Repeat("*", 40), out)
	})

	t.Run("single divider does not leak into siblings", func(t *testing.T) {
		base := f.Info()
		_ = base.Divider().String()
		assert.Len(t, strings.Split(base.PrependDivider().String(), "\n"), 1)
		assert.Equal(t, "after", base.Text("after").String())
	})

	t.Run("custom char keeps default length", func(t *testing.T) {
		assert.Equal(t, strings.Repeat("=", 40), f.Info().Divider(NewDivider("=")).String())
		assert.Equal(t, strings.Repeat("#", 40), f.Info().Divider(DefaultDivider.WithChar("#")).String())
	})

	t.Run("explicit length wins", func(t *testing.T) {
		assert.Equal(t, "~~~~~", f.Info().Divider(NewDivider("~", 5)).String())
		assert.Equal(t, "ab", f.Info().Divider(DefaultDivider.WithChar("a").WithLength(3).WithLength(1).WithChar("ab")).String())
	})

	t.Run("edge cases render empty lines", func(t *testing.T) {
		var out string
		require.NotPanics(t, func() { out = f.Info().PrependDivider(NewDivider("", 10)).Text("rest").String() })
		assert.Equal(t, "\nrest", out)

		require.NotPanics(t, func() { out = f.Info().PrependDivider(NewDivider("-", 0)).Text("rest").String() })
		assert.Equal(t, "\nrest", out)

		require.NotPanics(t, func() { out = f.Info().Divider(NewDivider("-", -5)).String() })
		assert.Equal(t, "", out)
	})

	t.Run("full width", func(t *testing.T) {
		t.Setenv("COLUMNS", "12")
		assert.Equal(t, strings.Repeat("-", 12), f.Info().Divider(DefaultDivider.WithFullWidth()).String())
		assert.Equal(t, strings.Repeat("日", 6), f.Info().Divider(NewDivider("日").WithFullWidth()).String())
	})

	t.Run("print", func(t *testing.T) {
		g, buf := newPlain(t)
		g.Info().PrependDivider(NewDivider("-", 3)).Text("x").AppendDivider(NewDivider("+", 2)).Print()
		assert.Equal(t, "---\nx\n++\n", buf.String())

		buf.Reset()
		g.Info().Text("x").Divider(NewDivider("", 4)).Print()
		assert.Equal(t, "\n", buf.String())
	})
}

func TestChainingReturnsNewValues(t *testing.T) {
	f, _ := newPlain(t)

	base := f.Info().Prefix("APP")
	one := base.Text("one").Styles("red")
	two := base.Text("two").Time()

	assert.Equal(t, "APP", base.String())
	assert.Equal(t, "APP one", one.String())
	assert.Equal(t, "10:30:45 APP two", two.String())
	assert.Equal(t, []string{"blue"}, base.ToObject().Styles)

	styles := []string{"red"}
	l := f.Info().Prefix("P", styles...)
	styles[0] = "green"
	assert.Equal(t, "P", l.String())
}

func TestToObject(t *testing.T) {
	f, _ := newPlain(t)

	obj := f.Warn().Prefix("W").Text("t").Detail("d").Data(42).Time().ToObject()
	assert.Equal(t, Snapshot{
		Type:        "warn",
		Kind:        KindNormal,
		Prefix:      "W",
		Text:        "t",
		Detail:      "d",
		Data:        42,
		DisplayTime: true,
		Styles:      []string{"yellow"},
		Valid:       true,
	}, obj)
	assert.Equal(t, "warn", f.Warn().Type())
	assert.Equal(t, "normal", KindNormal.String())
	assert.Equal(t, "stream", KindStream.String())
}

func TestUnknownStylesAreIgnored(t *testing.T) {
	f, _ := newPlain(t, WithColor(true))

	known := f.Info().Prefix("P", "bold").Text("hello", Styles{"red"}).String()
	mixed := f.Info().Prefix("P", "nope", "bold").Text("hello", Styles{"red", "sparkly"}).String()

	assert.Equal(t, known, mixed)
	assert.Equal(t, "P hello", pterm.RemoveColorFromString(mixed))
}

func TestNilAndEmptyArguments(t *testing.T) {
	f, _ := newPlain(t)

	require.NotPanics(t, func() {
		_ = f.Info().Prefix("").Text().Detail("", "").Data(nil).Styles().PrependDivider().Valid().String()
		_ = Logger{}.Text("zero value").Valid(false).String()
	})
}

func TestPrintWritesComposedLine(t *testing.T) {
	f, buf := newPlain(t)

	f.Error().Prefix("ERR").Text("disk full").Detail("/var").Print()
	assert.Equal(t, "ERR disk full\n/var\n", buf.String())
}
