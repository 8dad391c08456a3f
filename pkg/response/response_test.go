package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachment_Filename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"plain", "report-RPT1.txt", `attachment; filename=report-RPT1.txt`},
		{"quote", `chat-export-a"b.json`, `attachment; filename="chat-export-a\"b.json"`},
		{"space", "my report.txt", `attachment; filename="my report.txt"`},
		{"header break", "x\r\nSet-Cookie: a=b.json", `attachment; filename*=utf-8''x%0D%0ASet-Cookie%3A%20a%3Db.json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Attachment(rec, tt.filename, "text/plain; charset=utf-8", []byte("body"))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get("Content-Disposition"))
			assert.Empty(t, rec.Header().Get("Set-Cookie"))
			assert.Equal(t, "body", rec.Body.String())
		})
	}
}
