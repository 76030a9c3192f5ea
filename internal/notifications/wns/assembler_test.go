package wns

import (
	"encoding/xml"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parsedVisual mirrors the tile/toast document shape for decoding in tests.
type parsedVisual struct {
	XMLName  xml.Name
	Launch   string `xml:"launch,attr"`
	Duration string `xml:"duration,attr"`
	Visual   struct {
		Binding struct {
			Template string `xml:"template,attr"`
			Images   []struct {
				ID  string `xml:"id,attr"`
				Src string `xml:"src,attr"`
				Alt string `xml:"alt,attr"`
			} `xml:"image"`
			Texts []struct {
				ID   string `xml:"id,attr"`
				Body string `xml:",chardata"`
			} `xml:"text"`
		} `xml:"binding"`
	} `xml:"visual"`
}

func decodeVisual(t *testing.T, doc string) parsedVisual {
	t.Helper()
	var v parsedVisual
	require.NoError(t, xml.Unmarshal([]byte(doc), &v), "payload must be well-formed: %s", doc)
	return v
}

func TestAssembleVisual_ExactLayout(t *testing.T) {
	got := AssembleVisual("tile", nil, "TileWideImageAndText01",
		[]Image{{Src: "a.png", Alt: "first"}, {Src: "b.png"}},
		[]string{"one", "two"},
	)

	want := `<tile><visual><binding template="TileWideImageAndText01">` +
		`<image id="1" src="a.png" alt="first"/>` +
		`<image id="2" src="b.png"/>` +
		`<text id="1">one</text>` +
		`<text id="2">two</text>` +
		`</binding></visual></tile>`
	assert.Equal(t, want, got)
}

func TestAssembleVisual_RootAttributesKeepDeclaredOrder(t *testing.T) {
	got := AssembleVisual("toast", []Attr{{Name: "zeta", Value: "1"}, {Name: "alpha", Value: "2"}}, "ToastText01", nil, nil)

	assert.Equal(t, `<toast zeta="1" alpha="2"><visual><binding template="ToastText01"/></visual></toast>`, got)
}

func TestAssembleVisual_EmptyTextKeepsExplicitBody(t *testing.T) {
	got := AssembleVisual("tile", nil, "TileSquareText01", nil, []string{""})

	assert.Contains(t, got, `<text id="1"></text>`)
}

func TestAssembleVisual_IDsContiguousAndIndependent(t *testing.T) {
	tests := []struct {
		name   string
		images int
		texts  int
	}{
		{"images only", 3, 0},
		{"texts only", 0, 4},
		{"more images than texts", 5, 2},
		{"more texts than images", 1, 6},
		{"empty", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := make([]Image, tt.images)
			for i := range images {
				images[i] = Image{Src: "img.png"}
			}
			texts := make([]string, tt.texts)
			for i := range texts {
				texts[i] = "t"
			}

			v := decodeVisual(t, AssembleVisual("tile", nil, "TileSquareBlock", images, texts))

			require.Len(t, v.Visual.Binding.Images, tt.images)
			for i, img := range v.Visual.Binding.Images {
				assert.Equal(t, strconv.Itoa(i+1), img.ID)
			}
			require.Len(t, v.Visual.Binding.Texts, tt.texts)
			for i, txt := range v.Visual.Binding.Texts {
				assert.Equal(t, strconv.Itoa(i+1), txt.ID)
			}
		})
	}
}

func TestAssembleVisual_TextRoundTrip(t *testing.T) {
	inputs := []string{
		"A & B",
		"<b>bold</b>",
		`it's "quoted"`,
		"&amp; already escaped",
		"tab\there",
		"line1\r\nline2",
		"héllo wörld ✓",
		"]]> cdata end",
		"",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			doc := AssembleVisual("toast", []Attr{{Name: "launch", Value: in}}, "ToastText01",
				[]Image{{Src: in, Alt: in}},
				[]string{in},
			)
			v := decodeVisual(t, doc)

			assert.Equal(t, in, v.Launch)
			require.Len(t, v.Visual.Binding.Texts, 1)
			assert.Equal(t, in, v.Visual.Binding.Texts[0].Body)
			require.Len(t, v.Visual.Binding.Images, 1)
			assert.Equal(t, in, v.Visual.Binding.Images[0].Src)
			assert.Equal(t, in, v.Visual.Binding.Images[0].Alt)
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"A & B", "A &amp; B"},
		{"<x>", "&lt;x&gt;"},
		{`"q"`, "&#34;q&#34;"},
		{"it's", "it&#39;s"},
		{"a\tb\nc\rd", "a&#x9;b&#xA;c&#xD;d"},
		{"bell\x07", "bell�"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}
