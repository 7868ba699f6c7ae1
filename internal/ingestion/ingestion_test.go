package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/voice-engine/internal/types"
)

func TestFromText(t *testing.T) {
	src, err := FromText("  This is a   writing sample.  ", types.SourceLinkedIn)
	require.NoError(t, err)

	assert.NotEmpty(t, src.ID)
	assert.Equal(t, types.SourceLinkedIn, src.Type)
	assert.Equal(t, "This is a writing sample.", src.Text)
	assert.False(t, src.IngestedAt.IsZero())
}

func TestFromText_EmptyText(t *testing.T) {
	_, err := FromText("   \n  ", types.SourceBlog)
	require.Error(t, err)
	var malformedErr *types.MalformedSourceError
	assert.ErrorAs(t, err, &malformedErr)
}

func TestFromFile_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkedin_sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("My thoughts on leadership.\r\n\r\nHire slowly."), 0o644))

	src, err := FromFile(path, "")
	require.NoError(t, err)

	assert.Equal(t, types.SourceLinkedIn, src.Type)
	assert.Equal(t, "My thoughts on leadership.\n\nHire slowly.", src.Text)
}

func TestFromFile_HTMLStripsMarkup(t *testing.T) {
	html := `<html><head><script>tracking();</script><style>p{}</style></head>
<body><nav>Home | About</nav>
<p>First paragraph of the post.</p>
<p>Second paragraph with <strong>emphasis</strong>.</p>
<footer>Copyright notice</footer></body></html>`

	path := filepath.Join(t.TempDir(), "blog.html")
	require.NoError(t, os.WriteFile(path, []byte(html), 0o644))

	src, err := FromFile(path, "")
	require.NoError(t, err)

	assert.Equal(t, types.SourceBlog, src.Type)
	assert.Contains(t, src.Text, "First paragraph of the post.")
	assert.Contains(t, src.Text, "Second paragraph with emphasis.")
	assert.NotContains(t, src.Text, "tracking")
	assert.NotContains(t, src.Text, "Home | About")
	assert.NotContains(t, src.Text, "Copyright")
}

func TestFromFile_ExplicitTypeWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkedin_export.txt")
	require.NoError(t, os.WriteFile(path, []byte("A sample."), 0o644))

	src, err := FromFile(path, types.SourceEmail)
	require.NoError(t, err)
	assert.Equal(t, types.SourceEmail, src.Type)
}

func TestFromFile_MissingFile(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "absent.txt"), "")
	require.Error(t, err)
	var ingestErr *IngestError
	assert.ErrorAs(t, err, &ingestErr)
}

func TestExtractHTMLText_FallsBackToBodyText(t *testing.T) {
	text, err := ExtractHTMLText("<html><body>Bare text with <em>no</em> block elements.</body></html>")
	require.NoError(t, err)
	assert.Contains(t, text, "Bare text with no block elements.")
}

func TestInferSourceType(t *testing.T) {
	assert.Equal(t, types.SourceLinkedIn, InferSourceType("/tmp/My_LinkedIn_Posts.txt"))
	assert.Equal(t, types.SourceTwitter, InferSourceType("tweets-2024.txt"))
	assert.Equal(t, types.SourceBlog, InferSourceType("blog-draft.html"))
	assert.Equal(t, types.SourceEmail, InferSourceType("newsletter_march.txt"))
	assert.Equal(t, types.SourceOther, InferSourceType("samples.txt"))
}

func TestCleanText(t *testing.T) {
	input := "Line one.\r\nLine   two\twith  tabs.\n\n\n\nLine three."
	assert.Equal(t, "Line one.\nLine two with tabs.\n\nLine three.", CleanText(input))
}
