package handlers

import (
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/babbel/internal/database"
	"github.com/thereayou/babbel/internal/models"
)

// Дальше — отладочный "клиент". Это не UI, а печать состояния в браузер,
// поэтому никакой шаблонизации, просто строки.

type ViewHandler struct {
	db *database.Database
}

func NewViewHandler(db *database.Database) *ViewHandler {
	return &ViewHandler{db: db}
}

// Dates обрабатывает GET /dates/: шпаргалка с URL-кодированными метками времени
// вокруг "сейчас", чтобы руками не собирать start/end для запросов диапазона.
func (h *ViewHandler) Dates(c *gin.Context) {
	now := time.Now().UTC()

	var b strings.Builder
	b.WriteString(`<html><body><table cellspacing="10"><tr><td>When</td><td>Timestamp</td><td>URL encoded</td></tr>`)

	row := func(label string, t time.Time) {
		iso := t.Format(time.RFC3339Nano)
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>", label, iso, url.QueryEscape(iso))
	}

	row("-5 min", now.Add(-5*time.Minute))
	row("-1 min", now.Add(-time.Minute))
	row("<b>now</b>", now)
	row("+1 min", now.Add(time.Minute))
	row("+5 min", now.Add(5*time.Minute))

	b.WriteString("</table></body></html>")

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}

// Inbox обрабатывает GET /:username/: форма отправки плюс все входящие.
func (h *ViewHandler) Inbox(c *gin.Context) {
	user := currentUser(c)

	messages, err := h.db.GetAllReceivedMessages(user.ID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	lines := make([]string, len(messages))
	for i := range messages {
		lines[i] = html.EscapeString(formatMessageLine(&messages[i]))
	}

	page := fmt.Sprintf(`Logged in as: %s<br>
            <form action="/%s/message" method="post">
                <p>Recipient:<input type=text name=receiver>
                <p>Message:<input type=text name=message>
                <p><input type=submit value=Send>
            </form>
            <p>%s</p>`,
		html.EscapeString(user.Username),
		url.PathEscape(user.Username),
		strings.Join(lines, "<br>"))

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// DBDump обрабатывает GET /db/: всё содержимое базы как есть.
func (h *ViewHandler) DBDump(c *gin.Context) {
	users, err := h.db.GetAllUsers()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	messages, err := h.db.GetAllMessages()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	userLines := make([]string, len(users))
	for i, u := range users {
		userLines[i] = html.EscapeString(fmt.Sprintf("<User %d: %s (last seen %s)>",
			u.ID, u.Username, u.LastFetch.Format("2006-01-02 15:04:05")))
	}

	messageLines := make([]string, len(messages))
	for i := range messages {
		messageLines[i] = html.EscapeString(formatMessageLine(&messages[i]))
	}

	page := fmt.Sprintf(`
    users: %d<br>
    <pre>%s</pre>
    <br><br>
    messages: %d<br>
    %s`,
		len(users),
		strings.Join(userLines, "<br>"),
		len(messages),
		strings.Join(messageLines, "<br>"))

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func formatMessageLine(message *models.Message) string {
	return fmt.Sprintf("Message %d: %s to %s (%s): %s",
		message.ID,
		message.Sender.Username,
		message.Receiver.Username,
		message.Timestamp.Format("2006-01-02 15:04:05"),
		message.Content)
}
