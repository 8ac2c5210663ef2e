// folioctl: CLI de administración contra la API de folio.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/folio/internal/tenant"
)

type client struct {
	BaseURL     string
	Token       string
	AdminTenant string // se manda como X-Admin-Tenant si está seteado
	OutFormat   string // "json" | "text"
	HTTP        *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if c.AdminTenant != "" {
		req.Header.Set("X-Admin-Tenant", c.AdminTenant)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func main() {
	var (
		baseURL     = envOr("FOLIO_URL", "http://localhost:8080")
		token       = envOr("FOLIO_TOKEN", "")
		adminTenant = ""
		out         = envOr("FOLIO_OUT", "text")
		timeout     = 30 * time.Second
	)

	root := &cobra.Command{
		Use:   "folioctl",
		Short: "CLI admin para folio (/api/admin)",
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base de la API (env FOLIO_URL)")
	root.PersistentFlags().StringVar(&token, "token", token, "Token de sesión (env FOLIO_TOKEN)")
	root.PersistentFlags().StringVar(&adminTenant, "tenant", "", "Tenant activo: internal|external (pisa FOLIO_ADMIN_TENANT)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	cl := &client{HTTP: &http.Client{Timeout: timeout}}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cl.BaseURL = baseURL
		cl.Token = token
		// flag explícito > env persistido > internal, como el panel
		// resuelve header > cookie > host.
		cl.AdminTenant = tenant.Selection(adminTenant, os.Getenv("FOLIO_ADMIN_TENANT")).String()
		cl.OutFormat = out
	}

	// login
	var loginEmail, loginPassword string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Login de admin, imprime el token para FOLIO_TOKEN",
		RunE: func(cmd *cobra.Command, args []string) error {
			if loginEmail == "" || loginPassword == "" {
				return fmt.Errorf("--email y --password son requeridos")
			}
			b, _ := json.Marshal(map[string]string{"email": loginEmail, "password": loginPassword})
			status, body, err := cl.do("POST", "/api/admin/auth/login", b)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("login fallo: status=%d body=%s", status, string(body))
			}
			if cl.OutFormat == "text" {
				var resp struct {
					Token string `json:"token"`
				}
				if json.Unmarshal(body, &resp) == nil && resp.Token != "" {
					fmt.Println(resp.Token)
					return nil
				}
			}
			cl.print(status, body)
			return nil
		},
	}
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email del admin")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password del admin")

	// whoami
	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Sesión actual y tenant activo",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/api/admin/auth/me", nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("whoami fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}

	// tenant select
	var selectTenant string
	tenantSelectCmd := &cobra.Command{
		Use:   "select",
		Short: "Seleccionar tenant activo del panel (persiste en cookie del server)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if selectTenant == "" {
				return fmt.Errorf("--tenant es requerido (internal|external)")
			}
			b, _ := json.Marshal(map[string]string{"tenant": selectTenant})
			status, body, err := cl.do("POST", "/api/admin/tenant/select", b)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("select fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	tenantSelectCmd.Flags().StringVar(&selectTenant, "tenant", "", "internal|external")

	tenantCmd := &cobra.Command{Use: "tenant", Short: "Operaciones sobre el tenant activo"}
	tenantCmd.AddCommand(tenantSelectCmd)

	// content list
	contentListCmd := &cobra.Command{
		Use:   "list <entity-type>",
		Short: "Listar contenido del tenant activo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/api/admin/content/"+args[0], nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("list fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	contentCmd := &cobra.Command{Use: "content", Short: "Contenido del tenant activo"}
	contentCmd.AddCommand(contentListCmd)

	// cross-tenant fetch
	var fetchID int64
	ctFetchCmd := &cobra.Command{
		Use:   "fetch <entity-type>",
		Short: "Traer contenido del tenant opuesto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/admin/cross-tenant/" + args[0]
			if fetchID > 0 {
				path = fmt.Sprintf("%s?id=%d", path, fetchID)
			}
			status, body, err := cl.do("GET", path, nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("fetch fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	ctFetchCmd.Flags().Int64Var(&fetchID, "id", 0, "ID puntual en el tenant opuesto (opcional)")

	// cross-tenant conflicts
	var conflictName string
	ctConflictsCmd := &cobra.Command{
		Use:   "conflicts <entity-type>",
		Short: "Chequear si un nombre ya existe en el tenant activo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/admin/cross-tenant/" + args[0] + "/conflicts"
			if conflictName != "" {
				path += "?name=" + strings.ReplaceAll(conflictName, " ", "%20")
			}
			status, body, err := cl.do("GET", path, nil)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("conflicts fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	ctConflictsCmd.Flags().StringVar(&conflictName, "name", "", "Nombre natural a chequear")

	// cross-tenant resolve
	var resolveEntity, resolveMode, resolveNewName string
	var resolveSourceID int64
	ctResolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Copiar una entidad del tenant opuesto resolviendo conflictos",
		RunE: func(cmd *cobra.Command, args []string) error {
			if resolveEntity == "" || resolveMode == "" {
				return fmt.Errorf("--entity y --resolution son requeridos")
			}
			payload := map[string]any{
				"entityType": resolveEntity,
				"sourceId":   resolveSourceID,
				"resolution": resolveMode,
			}
			if resolveNewName != "" {
				payload["newName"] = resolveNewName
			}
			b, _ := json.Marshal(payload)
			status, body, err := cl.do("POST", "/api/admin/cross-tenant/resolve", b)
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("resolve fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	ctResolveCmd.Flags().StringVar(&resolveEntity, "entity", "", "Tipo de entidad (ej. projects)")
	ctResolveCmd.Flags().Int64Var(&resolveSourceID, "source-id", 0, "ID en el tenant opuesto")
	ctResolveCmd.Flags().StringVar(&resolveMode, "resolution", "", "skip|replace|create-new")
	ctResolveCmd.Flags().StringVar(&resolveNewName, "new-name", "", "Nombre nuevo para create-new (opcional)")

	crossCmd := &cobra.Command{Use: "cross-tenant", Short: "Fetch & merge entre tenants"}
	crossCmd.AddCommand(ctFetchCmd)
	crossCmd.AddCommand(ctConflictsCmd)
	crossCmd.AddCommand(ctResolveCmd)

	root.AddCommand(loginCmd)
	root.AddCommand(whoamiCmd)
	root.AddCommand(tenantCmd)
	root.AddCommand(contentCmd)
	root.AddCommand(crossCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
