package prompting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestResponseSchemaOf_Basic(t *testing.T) {
	type review struct {
		Title     string  `json:"title" description:"Movie title"`
		Sentiment string  `json:"sentiment" validate:"oneof=Positive Negative Neutral"`
		Rating    float64 `json:"rating" description:"Rating out of 10" validate:"gte=1,lte=10"`
		Verified  bool    `json:"verified"`
	}

	s, err := ResponseSchemaOf[review]()
	require.NoError(t, err)
	assert.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, []string{"title", "sentiment", "rating", "verified"}, s.Required)

	title := s.Properties["title"]
	require.NotNil(t, title)
	assert.Equal(t, genai.TypeString, title.Type)
	assert.Equal(t, "Movie title", title.Description)

	sentiment := s.Properties["sentiment"]
	require.NotNil(t, sentiment)
	assert.Equal(t, []string{"Positive", "Negative", "Neutral"}, sentiment.Enum)

	rating := s.Properties["rating"]
	require.NotNil(t, rating)
	assert.Equal(t, genai.TypeNumber, rating.Type)
	require.NotNil(t, rating.Minimum)
	assert.Equal(t, 1.0, *rating.Minimum)
	require.NotNil(t, rating.Maximum)
	assert.Equal(t, 10.0, *rating.Maximum)

	assert.Equal(t, genai.TypeBoolean, s.Properties["verified"].Type)
}

func TestResponseSchemaOf_NestedAndSlices(t *testing.T) {
	type item struct {
		Name  string  `json:"name"`
		Price float64 `json:"price" validate:"gte=0"`
	}
	type catalog struct {
		Category string    `json:"category"`
		Items    []item    `json:"items" validate:"min=1,max=5"`
		Tags     []string  `json:"tags"`
		Created  time.Time `json:"created"`
	}

	s, err := ResponseSchemaOf[catalog]()
	require.NoError(t, err)

	items := s.Properties["items"]
	require.NotNil(t, items)
	assert.Equal(t, genai.TypeArray, items.Type)
	require.NotNil(t, items.MinItems)
	assert.EqualValues(t, 1, *items.MinItems)
	require.NotNil(t, items.MaxItems)
	assert.EqualValues(t, 5, *items.MaxItems)

	require.NotNil(t, items.Items)
	assert.Equal(t, genai.TypeObject, items.Items.Type)
	assert.Equal(t, genai.TypeNumber, items.Items.Properties["price"].Type)

	tags := s.Properties["tags"]
	require.NotNil(t, tags)
	assert.Equal(t, genai.TypeString, tags.Items.Type)

	created := s.Properties["created"]
	require.NotNil(t, created)
	assert.Equal(t, genai.TypeString, created.Type)
	assert.Equal(t, "date-time", created.Format)
}

func TestResponseSchemaOf_SkipsUnexportedAndIgnored(t *testing.T) {
	type rec struct {
		Visible string `json:"visible"`
		Ignored string `json:"-"`
		hidden  string
	}
	_ = rec{hidden: ""}

	s, err := ResponseSchemaOf[rec]()
	require.NoError(t, err)
	assert.Equal(t, []string{"visible"}, s.Required)
	assert.Len(t, s.Properties, 1)
}

func TestResponseSchemaOf_FieldNameFallback(t *testing.T) {
	type rec struct {
		NoTag int
	}

	s, err := ResponseSchemaOf[rec]()
	require.NoError(t, err)
	assert.Contains(t, s.Properties, "NoTag")
	assert.Equal(t, genai.TypeInteger, s.Properties["NoTag"].Type)
}

func TestResponseSchemaOf_RejectsNonStruct(t *testing.T) {
	_, err := ResponseSchemaOf[string]()
	assert.Error(t, err)

	_, err = ResponseSchemaOf[map[string]int]()
	assert.Error(t, err)
}

func TestResponseSchemaOf_RejectsUnsupportedField(t *testing.T) {
	type rec struct {
		Lookup map[string]string `json:"lookup"`
	}

	_, err := ResponseSchemaOf[rec]()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Lookup")
}
