package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentDisposition_ASCII(t *testing.T) {
	assert.Equal(t, `attachment; filename="Acme_Corp_repair_status.pdf"`,
		contentDisposition("Acme_Corp_repair_status.pdf"))
}

func TestContentDisposition_UTF8ConRespaldo(t *testing.T) {
	got := contentDisposition("Müller_GmbH_repair_status.pdf")
	assert.Equal(t,
		`attachment; filename="M_ller_GmbH_repair_status.pdf"; filename*=UTF-8''M%C3%BCller_GmbH_repair_status.pdf`,
		got)
}

func TestContentDisposition_ComillasYSeparadores(t *testing.T) {
	assert.Equal(t, `attachment; filename="O_Brien_repair_status.pdf"`, contentDisposition(`O"Brien_repair_status.pdf`))

	got := contentDisposition("Café;Bar_repair_status.pdf")
	assert.Contains(t, got, `filename*=UTF-8''Caf%C3%A9%3BBar_repair_status.pdf`)
}
