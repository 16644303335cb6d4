package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/timesheet/internal/config"
	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWizardState_Prefill(t *testing.T) {
	st := newWizardState(&domain.Profile{EmployeeName: "Ana", ClientName: "Toks"},
		config.Config{DefaultProject: "ProjA", DefaultAuthorizer: "Luis", Format: "xlsx"})
	assert.Equal(t, "Ana", st.Consultant)
	assert.Equal(t, "Toks", st.Client)
	assert.Equal(t, "ProjA", st.Project)
	assert.Equal(t, "Luis", st.Authorizer)
	assert.Equal(t, "xlsx", st.Format)

	st = newWizardState(nil, config.Config{})
	assert.Empty(t, st.Consultant)
	assert.Equal(t, "pdf", st.Format)
}

func TestSplitPaths(t *testing.T) {
	assert.Equal(t, []string{"a.xlsx", "b c.xlsx"}, splitPaths("a.xlsx\n\n  b c.xlsx  \n"))
	assert.Nil(t, splitPaths(" \n "))
}

func TestWizardValidators(t *testing.T) {
	assert.NoError(t, validateOptionalDate(""))
	assert.NoError(t, validateOptionalDate("2024-03-01"))
	assert.Error(t, validateOptionalDate("1/3/2024"))

	assert.Error(t, required("client")(" "))
	assert.NoError(t, required("client")("Toks"))

	sig := signatureFile(t)
	text := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("hello"), 0o644))

	assert.NoError(t, validateSignatureFile(false)(sig))
	assert.Error(t, validateSignatureFile(false)(""))
	assert.NoError(t, validateSignatureFile(true)(""))
	assert.Error(t, validateSignatureFile(true)(text))
	assert.Error(t, validateSignatureFile(true)("/does/not/exist.png"))

	book := marchWorkbook(t)
	assert.NoError(t, validateSpreadsheets(book))
	assert.Error(t, validateSpreadsheets(""))
	assert.Error(t, validateSpreadsheets(book+"\n"+filepath.Dir(book)))
}

func TestWizardState_Job(t *testing.T) {
	now := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	stored := &domain.Profile{EmployeeName: "Ana", Signature: []byte{9}, SignatureMIME: "image/png"}
	st := &wizardState{
		Consultant: "Ana", Client: "Toks", Project: "ProjA", Authorizer: "Luis",
		From: "2024-03-01", Files: "a.xlsx\nb.xlsx", Format: "pdf", OutPath: " out.pdf ",
	}

	job, err := st.job(stored, now)
	require.NoError(t, err)
	assert.True(t, job.Request.RequireSignature)
	assert.Equal(t, []byte{9}, job.Request.Signature, "stored signature reused")
	require.Len(t, job.Request.Sources, 2)
	assert.Equal(t, "b.xlsx", job.Request.Sources[1].Name)
	require.NotNil(t, job.Request.Period.From)
	assert.Nil(t, job.Request.Period.To)
	assert.Equal(t, "out.pdf", job.OutPath)
	assert.Equal(t, now, job.Request.Now)

	st.SignaturePath = signatureFile(t)
	job, err = st.job(stored, now)
	require.NoError(t, err)
	assert.Equal(t, testutil.SignaturePNG, job.Request.Signature)
	assert.Empty(t, job.Request.SignatureMIME)

	st.SignaturePath = "/does/not/exist.png"
	_, err = st.job(stored, now)
	assert.Error(t, err)
}

func TestWizardForm_Builds(t *testing.T) {
	st := newWizardState(nil, config.Config{Format: "pdf"})
	assert.NotNil(t, wizardForm(st, false))
	assert.NotNil(t, wizardConfirm("Try again?", &st.Confirm))
}
