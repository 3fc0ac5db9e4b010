package fixture

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getDocument(t *testing.T, url string) *goquery.Document {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	doc, err := goquery.NewDocumentFromReader(res.Body)
	require.NoError(t, err)
	return doc
}

func TestRouterRendersMarkers(t *testing.T) {
	srv := httptest.NewServer(Router(Config{Instances: 3, ParentMargin: "-1rem", ParentDisplay: "flex"}))
	defer srv.Close()

	doc := getDocument(t, srv.URL+"/")

	assert.Equal(t, 3, doc.Find(".balloons").Length())

	style, ok := doc.Find(".stage").Attr("style")
	require.True(t, ok)
	assert.Contains(t, style, "margin-bottom: -1rem")
	assert.Contains(t, style, "display: flex")
}

func TestRouterDefaults(t *testing.T) {
	srv := httptest.NewServer(Router(Config{}))
	defer srv.Close()

	doc := getDocument(t, srv.URL+"/")

	assert.Equal(t, 1, doc.Find(".balloons").Length())

	style, _ := doc.Find(".stage").Attr("style")
	assert.Contains(t, style, "margin-bottom: -1rem")
}

func TestRouterCustomMarkerClass(t *testing.T) {
	srv := httptest.NewServer(Router(Config{MarkerClass: "confetti", Instances: 2}))
	defer srv.Close()

	doc := getDocument(t, srv.URL+"/")

	assert.Equal(t, 2, doc.Find(".confetti").Length())
	assert.Equal(t, 0, doc.Find(".balloons").Length())
}

func TestRouterPlainPageHasNoMarkers(t *testing.T) {
	srv := httptest.NewServer(Router(Config{Instances: 3}))
	defer srv.Close()

	doc := getDocument(t, srv.URL+"/plain")

	assert.Equal(t, 0, doc.Find(".balloons").Length())
	assert.Equal(t, 1, doc.Find(".stage").Length())
}

func TestRouterLatePageAttachesMarkersFromScript(t *testing.T) {
	srv := httptest.NewServer(Router(Config{Instances: 2, LateDelayMs: 250}))
	defer srv.Close()

	doc := getDocument(t, srv.URL+"/late")

	// markers come from the script, not the initial document
	assert.Equal(t, 0, doc.Find(".balloons").Length())
	assert.Equal(t, 1, doc.Find("script").Length())
	assert.Contains(t, doc.Find("script").Text(), "250")
}
