package records

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshalAcceptsNumbersAndStrings(t *testing.T) {
	var faq Faq
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"question":"q"}`), &faq))
	assert.Equal(t, ID("42"), faq.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"abc01","question":"q"}`), &faq))
	assert.Equal(t, ID("abc01"), faq.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &faq))
	assert.Equal(t, ID(""), faq.ID)
}

func TestIDMarshalEmitsString(t *testing.T) {
	out, err := json.Marshal(Faq{ID: "7", Question: "q"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"id":"7"`)
}

func TestFieldLookups(t *testing.T) {
	faq := Faq{ID: "1", Question: "q", Answer: "a", Status: "1"}
	assert.Equal(t, "q", faq.Field("question"))
	assert.Equal(t, "1", faq.Field("status"))
	assert.Equal(t, "", faq.Field("nope"))

	plan := Plan{ID: "p1", Title: "Gold", DirectChat: true}
	assert.Equal(t, "Gold", plan.Field("title"))
	assert.Equal(t, "1", plan.Field("directChat"))
	assert.Equal(t, "0", plan.Field("chat"))

	goal := RelationGoal{Title: "Serious", Subtitle: "Long term"}
	assert.Equal(t, "Long term", goal.Field("subtitle"))
}

func TestSearchKeysPerEntity(t *testing.T) {
	assert.Equal(t, []string{"question"}, Faq{}.SearchKeys())
	assert.Equal(t, []string{"title"}, Interest{}.SearchKeys())
	assert.Equal(t, []string{"title"}, Language{}.SearchKeys())
	assert.Equal(t, []string{"title"}, Religion{}.SearchKeys())
	assert.Equal(t, []string{"title"}, RelationGoal{}.SearchKeys())
	assert.Equal(t, []string{"title"}, Plan{}.SearchKeys())
	assert.Equal(t, []string{"title", "subtitle"}, Payment{}.SearchKeys())
	// The user list searches every column.
	assert.Contains(t, User{}.SearchKeys(), "email")
	assert.Contains(t, User{}.SearchKeys(), "planName")
	assert.Greater(t, len(User{}.SearchKeys()), 20)
}

func TestUserFieldCoversSearchKeys(t *testing.T) {
	u := User{
		ID: "1", Name: "Ada", Email: "ada@example.com", Mobile: "555",
		Gender: "female", PlanName: "Gold", IsVerified: "1",
	}
	assert.Equal(t, "Ada", u.Field("name"))
	assert.Equal(t, "ada@example.com", u.Field("email"))
	assert.Equal(t, "Gold", u.Field("planName"))
	assert.Equal(t, "1", u.Field("is_verify"))
}

func TestFormDraftEncoding(t *testing.T) {
	d := InterestDraft{Title: "Hiking", Status: "1", Icon: &IconFile{Name: "i.webp", Data: []byte{1}}}
	assert.Equal(t, map[string]string{"title": "Hiking", "status": "1"}, d.FormFields())

	field, name, data, ok := d.FormFile()
	require.True(t, ok)
	assert.Equal(t, "image", field)
	assert.Equal(t, "i.webp", name)
	assert.Equal(t, []byte{1}, data)

	_, _, _, ok = LanguageDraft{Title: "French", Status: "1"}.FormFile()
	assert.False(t, ok)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Published", StatusLabel(StatusPublished))
	assert.Equal(t, "Unpublished", StatusLabel(StatusUnpublished))
	assert.Equal(t, "Unpublished", StatusLabel(""))
}
