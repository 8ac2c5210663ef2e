package tenant

// Selection resuelve el tenant elegido por un admin a partir de sus dos
// fuentes de preferencia persistidas: la cookie y el valor local (folioctl
// guarda uno en disco; el navegador usa la cookie).
//
// Prioridad: cookie válida > valor local válido > Internal.
// Cualquier literal inválido (incluido vacío) se trata como ausente.
func Selection(cookie, local string) Tenant {
	if t, ok := Parse(cookie); ok {
		return t
	}
	if t, ok := Parse(local); ok {
		return t
	}
	return Internal
}
