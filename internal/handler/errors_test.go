package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParsePostID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		raw    string
		want   uint64
		wantOK bool
	}{
		{"1", 1, true},
		{"9223372036854775807", 9223372036854775807, true},
		{"9223372036854775808", 0, false},
		{"18446744073709551615", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			id, ok := parsePostID(c)
			if ok != tt.wantOK || id != tt.want {
				t.Fatalf("parsePostID(%q) = %d, %v; want %d, %v", tt.raw, id, ok, tt.want, tt.wantOK)
			}
			if !ok && w.Code != http.StatusNotFound {
				t.Errorf("status = %d, want 404", w.Code)
			}
		})
	}
}
