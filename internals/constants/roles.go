package constants

import "fmt"

// Tiga role sistem. Admin global, Client terikat satu company,
// Evaluator terikat assignment yang menyebut dirinya.
const (
	RoleAdmin     = "admin"
	RoleClient    = "client"
	RoleEvaluator = "evaluator"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess          = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyAdminsOrClientsCanAccess = "❌ Hanya admin atau client yang boleh mengakses fitur %s."
	ErrOnlyEvaluatorsCanAccess      = "❌ Hanya evaluator yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorAdminOrClient(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsOrClientsCanAccess, feature)
}

func RoleErrorEvaluator(feature string) string {
	return fmt.Sprintf(ErrOnlyEvaluatorsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleClient,
		RoleEvaluator,
	}

	AdminAndClient = []string{
		RoleAdmin,
		RoleClient,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	EvaluatorOnly = []string{
		RoleEvaluator,
	}
)

// ValidRole memeriksa role yang dikenal sistem (registrasi/provisioning).
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
