package wiki

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/syncopy/pkg/mapping"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.TraceLevel).WithContext(context.Background())
}

func TestRewriteLinks(t *testing.T) {
	ctx := testContext(t)

	tests := []struct {
		name     string
		markdown string
		pages    *mapping.Mapping
		want     string
	}{
		{
			name:     "page_link",
			markdown: "see syn1/wiki/5",
			pages:    mapping.New("5", "7"),
			want:     "see syn9/wiki/7",
		},
		{
			name:     "unmapped_page_keeps_id",
			markdown: "see syn1/wiki/6",
			pages:    mapping.New("5", "7"),
			want:     "see syn9/wiki/6",
		},
		{
			name:     "page_id_prefix",
			markdown: "[a](#!Synapse:syn1/wiki/55) [b](#!Synapse:syn1/wiki/5)",
			pages:    mapping.New("5", "7", "55", "70"),
			want:     "[a](#!Synapse:syn9/wiki/70) [b](#!Synapse:syn9/wiki/7)",
		},
		{
			name:     "entity_id_prefix",
			markdown: "syn12/wiki/5 and syn1",
			pages:    mapping.New("5", "7"),
			want:     "syn12/wiki/5 and syn9",
		},
		{
			name:     "code_blocks_are_rewritten",
			markdown: "```\nsyn1/wiki/5\n```",
			pages:    mapping.New("5", "7"),
			want:     "```\nsyn9/wiki/7\n```",
		},
		{
			name:     "no_references",
			markdown: "# Title\n\nplain text",
			pages:    mapping.New("5", "7"),
			want:     "# Title\n\nplain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RewriteLinks(ctx, tt.markdown, "syn1", "syn9", tt.pages)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewriteReferences(t *testing.T) {
	ctx := testContext(t)

	tests := []struct {
		name     string
		markdown string
		entities *mapping.Mapping
		want     string
	}{
		{
			name:     "single",
			markdown: "data in syn3",
			entities: mapping.New("syn3", "syn30"),
			want:     "data in syn30",
		},
		{
			name:     "prefix_ids",
			markdown: "syn1 syn12 syn123",
			entities: mapping.New("syn1", "syn2", "syn12", "syn13"),
			want:     "syn2 syn13 syn123",
		},
		{
			name:     "chained_does_not_cascade",
			markdown: "syn1 then syn9",
			entities: mapping.New("syn1", "syn9", "syn9", "syn20"),
			want:     "syn9 then syn20",
		},
		{
			name:     "nil_mapping",
			markdown: "syn1",
			entities: nil,
			want:     "syn1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RewriteReferences(ctx, tt.markdown, tt.entities)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRewrite_InvalidRules(t *testing.T) {
	ctx := testContext(t)

	t.Run("entity_map_key_not_an_id", func(t *testing.T) {
		_, err := RewriteReferences(ctx, "syn1", mapping.New("project", "syn2"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rewriting entity references")
	})

	t.Run("page_id_not_numeric", func(t *testing.T) {
		_, err := RewriteLinks(ctx, "syn1/wiki/5", "syn1", "syn9", mapping.New("home", "7"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rewriting wiki links")
	})

	t.Run("source_not_an_id", func(t *testing.T) {
		_, err := RewriteLinks(ctx, "text", "source", "syn9", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rewriting source references")
	})
}

func TestRewrite_BothPasses(t *testing.T) {
	ctx := testContext(t)
	pages := mapping.New("5", "7")
	entities := mapping.New("syn1", "syn9")

	md, err := RewriteLinks(ctx, "see syn1/wiki/5", "syn1", "syn9", pages)
	require.NoError(t, err)
	md, err = RewriteReferences(ctx, md, entities)
	require.NoError(t, err)
	assert.Equal(t, "see syn9/wiki/7", md)

	// rewriting again is a no-op
	again, err := RewriteLinks(ctx, md, "syn1", "syn9", pages)
	require.NoError(t, err)
	again, err = RewriteReferences(ctx, again, entities)
	require.NoError(t, err)
	assert.Equal(t, md, again)
}
