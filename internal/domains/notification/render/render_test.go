package render_test

import (
	"proccms/internal/domains/notification/model"
	"proccms/internal/domains/notification/render"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEveryTemplate(t *testing.T) {
	renderer, err := render.New()
	require.NoError(t, err)

	data := model.Data{
		Request: model.RequestInfo{
			ID:          "req-1",
			Username:    "alice",
			Department:  "Physics",
			Description: "Projector not working",
			Status:      "Assigned",
			AssignedTo:  "bob",
		},
		Staff:   model.StaffInfo{Name: "Bob"},
		Remark:  model.RemarkInfo{Text: "Parts ordered", EnteredBy: "Bob", Date: "2026-10-18"},
		Booking: model.BookingInfo{ID: "bk-1", RoomType: "Auditorium", Date: "2026-10-20", From: "10:00", To: "12:00"},
	}

	for _, name := range model.Templates {
		t.Run(name, func(t *testing.T) {
			msg, err := renderer.Render(model.Email{Template: name, To: []string{"a@campus.edu"}, Data: data})

			require.NoError(t, err)
			assert.NotEmpty(t, msg.Subject)
			assert.NotContains(t, msg.Subject, "\n")
			assert.Contains(t, msg.HTML, "<h1>PROCCMS</h1>")
			assert.Contains(t, msg.Text, "PROCCMS")
			assert.Equal(t, []string{"a@campus.edu"}, msg.To)
		})
	}
}

func TestRenderContent(t *testing.T) {
	renderer, err := render.New()
	require.NoError(t, err)

	msg, err := renderer.Render(model.Email{
		Template: model.TemplateNewRemarkNotification,
		To:       []string{"alice@campus.edu"},
		Data: model.Data{
			Request: model.RequestInfo{ID: "req-9", Username: "alice", Description: "Leaking tap"},
			Remark:  model.RemarkInfo{Text: "<b>fixed</b>", EnteredBy: "Bob", Date: "2026-10-18"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "💬 New Remark Added to Your Request", msg.Subject)
	assert.Contains(t, msg.Text, "Remark: <b>fixed</b>")
	assert.Contains(t, msg.HTML, "&lt;b&gt;fixed&lt;/b&gt;")
	assert.Contains(t, msg.HTML, "req-9")
}

func TestRenderNewRequestType(t *testing.T) {
	renderer, err := render.New()
	require.NoError(t, err)

	msg, err := renderer.Render(model.Email{
		Template: model.TemplateNewRequest,
		Data:     model.Data{Request: model.RequestInfo{IsNewRequirement: true}, Now: "18 Oct 2026 10:00"},
	})
	require.NoError(t, err)

	assert.Contains(t, msg.Text, "Type: New Requirement")
	assert.Contains(t, msg.Text, "Date: 18 Oct 2026 10:00")
}

func TestRenderUnknownTemplate(t *testing.T) {
	renderer := render.MustNew()

	_, err := renderer.Render(model.Email{Template: "missing"})

	assert.Error(t, err)
}

func TestMustNewLoadsLayouts(t *testing.T) {
	assert.NotPanics(t, func() { render.MustNew() })
}
