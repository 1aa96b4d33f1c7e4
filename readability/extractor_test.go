package readability_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/flashgen"
	"github.com/fwojciec/flashgen/mock"
	"github.com/fwojciec/flashgen/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article text and title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Understanding Goroutines</title></head><body>
			<nav>Home | About | Contact</nav>
			<article>
				<h1>Understanding Goroutines</h1>
				<p>Goroutines are functions that run concurrently with other functions.
				They are multiplexed onto a small number of operating system threads,
				which makes them dramatically cheaper than threads.</p>
				<p>Channels are the pipes that connect concurrent goroutines. You can
				send values into channels from one goroutine and receive those values
				in another goroutine.</p>
			</article>
			<footer>Copyright 2024</footer>
		</body></html>`

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return html, nil
			},
		}

		extractor := readability.NewExtractor(fetcher)

		content, err := extractor.Extract(context.Background(), "https://example.com/goroutines")
		require.NoError(t, err)
		assert.Equal(t, "Understanding Goroutines", content.Title)
		assert.Contains(t, content.Body, "multiplexed onto a small number")
		assert.NotContains(t, content.Body, "Copyright 2024")
		assert.False(t, strings.Contains(content.Body, "\n\n\n"))
	})

	t.Run("propagates fetch errors unchanged", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", flashgen.Errorf(flashgen.EUNAVAILABLE, "HTTP 500")
			},
		}

		extractor := readability.NewExtractor(fetcher)

		_, err := extractor.Extract(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, flashgen.EUNAVAILABLE, flashgen.ErrorCode(err))
	})
}
