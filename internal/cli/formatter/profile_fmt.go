package formatter

import (
	"fmt"
	"time"

	"github.com/alexanderramin/timesheet/internal/domain"
)

// FormatProfile renders the stored profile. A nil profile means nothing is
// stored yet.
func FormatProfile(p *domain.Profile, now time.Time) string {
	if p == nil {
		return Dim("No profile stored. One is saved after the first report.") + "\n"
	}
	signature := StyleWarn.Render("none")
	if p.HasSignature() {
		signature = StyleOK.Render(fmt.Sprintf("%s, %d bytes", p.SignatureMIME, len(p.Signature)))
	}
	updated := ""
	if !p.UpdatedAt.IsZero() {
		updated = RelativeDateFrom(p.UpdatedAt, now)
	}
	return RenderBox("Profile", KeyValues(
		[2]string{"Consultor", p.EmployeeName},
		[2]string{"Cliente", p.ClientName},
		[2]string{"Firma", signature},
		[2]string{"Actualizado", updated},
	)) + "\n"
}
