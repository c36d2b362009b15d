package etree_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/etree"
	"github.com/fwojciec/docindex/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeed(t *testing.T) {
	t.Parallel()

	t.Run("reads items from an RSS channel", func(t *testing.T) {
		t.Parallel()

		xml := `<?xml version="1.0"?>
<rss version="2.0">
<channel>
	<title>Docs</title>
	<item>
		<title>A</title>
		<description>guide:1:0:/intro</description>
		<guid>x</guid>
	</item>
	<item>
		<title>B</title>
		<description><![CDATA[:2:1:/intro]]></description>
		<guid>y</guid>
	</item>
</channel>
</rss>`

		items, err := etree.ParseFeed(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, []docindex.FeedItem{
			{Title: "A", Description: "guide:1:0:/intro", GUID: "x"},
			{Title: "B", Description: ":2:1:/intro", GUID: "y"},
		}, items)
	})

	t.Run("defaults missing elements to empty", func(t *testing.T) {
		t.Parallel()

		items, err := etree.ParseFeed(strings.NewReader(`<rss><channel><item><title>Only</title></item></channel></rss>`))

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, docindex.FeedItem{Title: "Only"}, items[0])
	})

	t.Run("returns empty slice for feed without items", func(t *testing.T) {
		t.Parallel()

		items, err := etree.ParseFeed(strings.NewReader(`<rss><channel></channel></rss>`))

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("returns malformed error for invalid XML", func(t *testing.T) {
		t.Parallel()

		_, err := etree.ParseFeed(strings.NewReader(`<<rss>`))

		require.Error(t, err)
		assert.Equal(t, docindex.EMALFORMED, docindex.ErrorCode(err))
	})
}

func TestWriteFeed(t *testing.T) {
	t.Parallel()

	items := []docindex.FeedItem{
		{Title: "A & B", Description: "guide:1:0:/intro", GUID: "intro.html#a"},
	}

	var buf bytes.Buffer
	require.NoError(t, etree.WriteFeed(&buf, "Docs", items))

	parsed, err := etree.ParseFeed(&buf)
	require.NoError(t, err)
	assert.Equal(t, items, parsed)

	corpus := search.BuildCorpus(parsed)
	assert.Equal(t, "/intro:A & B", corpus.Records()[0].Label)
}
