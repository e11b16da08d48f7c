package main

import (
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported languages
const (
	LangEnglish = "en"
	LangSpanish = "es"
)

var (
	// Global printer for internationalization
	printer *message.Printer

	// Synchronization for thread-safe access
	initI18nOnce sync.Once
	printerMu    sync.RWMutex

	// Available languages
	supportedLanguages = map[string]language.Tag{
		LangEnglish: language.English,
		LangSpanish: language.Spanish,
	}
)

// initI18n initializes the internationalization system thread-safely
func initI18n(langFlag string) {
	initI18nOnce.Do(func() {
		registerMessages()
	})

	lang := determineLang(langFlag)

	tag, exists := supportedLanguages[lang]
	if !exists {
		tag = language.English
	}

	printerMu.Lock()
	printer = message.NewPrinter(tag)
	printerMu.Unlock()
}

// determineLang determines which language to use based on priority:
// 1. CLI flag (--lang)
// 2. Environment variable (OSSH_LANG)
// 3. Standard locale environment variables (LC_ALL, LANG)
// 4. Default (English)
func determineLang(langFlag string) string {
	if langFlag != "" {
		return normalizeLanguage(langFlag)
	}

	if envLang := os.Getenv("OSSH_LANG"); envLang != "" {
		return normalizeLanguage(envLang)
	}

	if envLang := os.Getenv("LC_ALL"); envLang != "" {
		return normalizeLanguage(envLang)
	}

	if envLang := os.Getenv("LANG"); envLang != "" {
		return normalizeLanguage(envLang)
	}

	return LangEnglish
}

// normalizeLanguage normalizes language codes to our supported format
func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))

	switch {
	case strings.HasPrefix(lang, "en") || lang == "english":
		return LangEnglish
	case strings.HasPrefix(lang, "es") || lang == "spanish" || lang == "español":
		return LangSpanish
	default:
		return LangEnglish
	}
}

// registerMessages registers all translatable messages
func registerMessages() {
	// Command descriptions
	message.SetString(language.English, "root_short", "SSH connection manager")
	message.SetString(language.Spanish, "root_short", "Gestor de conexiones SSH")

	message.SetString(language.English, "root_long", "Store, list, edit, and connect to SSH servers defined in your SSH config file.")
	message.SetString(language.Spanish, "root_long", "Guarda, lista, edita y conecta a servidores SSH definidos en tu archivo de configuración SSH.")

	message.SetString(language.English, "list_short", "List all configured servers")
	message.SetString(language.Spanish, "list_short", "Listar todos los servidores configurados")

	message.SetString(language.English, "create_short", "Create a new SSH connection")
	message.SetString(language.Spanish, "create_short", "Crear una nueva conexión SSH")

	message.SetString(language.English, "edit_short", "Edit an existing SSH connection")
	message.SetString(language.Spanish, "edit_short", "Editar una conexión SSH existente")

	message.SetString(language.English, "remove_short", "Remove an SSH connection")
	message.SetString(language.Spanish, "remove_short", "Eliminar una conexión SSH")

	message.SetString(language.English, "connect_short", "Connect to a configured server")
	message.SetString(language.Spanish, "connect_short", "Conectar a un servidor configurado")

	message.SetString(language.English, "version_short", "Show version information")
	message.SetString(language.Spanish, "version_short", "Mostrar información de versión")

	// Flag help
	message.SetString(language.English, "flag_config_help", "SSH config file path (default ~/.ssh/config)")
	message.SetString(language.Spanish, "flag_config_help", "Ruta del archivo de configuración SSH (por defecto ~/.ssh/config)")

	message.SetString(language.English, "flag_verbose_help", "Enable verbose logging")
	message.SetString(language.Spanish, "flag_verbose_help", "Activar registro detallado")

	message.SetString(language.English, "flag_lang_help", "Set language for output (en, es)")
	message.SetString(language.Spanish, "flag_lang_help", "Establecer idioma de salida (en, es)")

	message.SetString(language.English, "flag_list_help", "List all configured servers")
	message.SetString(language.Spanish, "flag_list_help", "Listar todos los servidores configurados")

	message.SetString(language.English, "flag_create_help", "Create a new SSH connection")
	message.SetString(language.Spanish, "flag_create_help", "Crear una nueva conexión SSH")

	message.SetString(language.English, "flag_edit_help", "Edit an existing SSH connection")
	message.SetString(language.Spanish, "flag_edit_help", "Editar una conexión SSH existente")

	// Listing
	message.SetString(language.English, "table_title", "Available SSH Servers")
	message.SetString(language.Spanish, "table_title", "Servidores SSH Disponibles")

	message.SetString(language.English, "col_index", "#")
	message.SetString(language.Spanish, "col_index", "#")

	message.SetString(language.English, "col_alias", "Server Name")
	message.SetString(language.Spanish, "col_alias", "Nombre del Servidor")

	message.SetString(language.English, "col_hostname", "Hostname/IP")
	message.SetString(language.Spanish, "col_hostname", "Servidor/IP")

	message.SetString(language.English, "col_user", "Username")
	message.SetString(language.Spanish, "col_user", "Usuario")

	message.SetString(language.English, "col_port", "Port")
	message.SetString(language.Spanish, "col_port", "Puerto")

	message.SetString(language.English, "col_auth", "Auth Method")
	message.SetString(language.Spanish, "col_auth", "Método de Autenticación")

	message.SetString(language.English, "auth_key", "SSH Key")
	message.SetString(language.Spanish, "auth_key", "Clave SSH")

	message.SetString(language.English, "auth_password", "Password")
	message.SetString(language.Spanish, "auth_password", "Contraseña")

	message.SetString(language.English, "no_hosts", "No servers configured yet. Use 'ossh create' to add a new server.")
	message.SetString(language.Spanish, "no_hosts", "Aún no hay servidores configurados. Usa 'ossh create' para añadir uno nuevo.")

	// Interactive prompts
	message.SetString(language.English, "select_connect_title", "Select a server to connect to")
	message.SetString(language.Spanish, "select_connect_title", "Selecciona un servidor para conectar")

	message.SetString(language.English, "select_edit_title", "Select a server to edit")
	message.SetString(language.Spanish, "select_edit_title", "Selecciona un servidor para editar")

	message.SetString(language.English, "select_remove_title", "Select a server to remove")
	message.SetString(language.Spanish, "select_remove_title", "Selecciona un servidor para eliminar")

	message.SetString(language.English, "select_description", "Use arrow keys to navigate, Enter to select")
	message.SetString(language.Spanish, "select_description", "Usa las flechas para navegar, Enter para seleccionar")

	message.SetString(language.English, "create_title", "Add New Server Configuration")
	message.SetString(language.Spanish, "create_title", "Añadir Nueva Configuración de Servidor")

	message.SetString(language.English, "edit_title", "Editing server: %s")
	message.SetString(language.Spanish, "edit_title", "Editando servidor: %s")

	message.SetString(language.English, "prompt_alias", "Server name")
	message.SetString(language.Spanish, "prompt_alias", "Nombre del servidor")

	message.SetString(language.English, "prompt_hostname", "Hostname or IP address")
	message.SetString(language.Spanish, "prompt_hostname", "Servidor o dirección IP")

	message.SetString(language.English, "prompt_user", "Username")
	message.SetString(language.Spanish, "prompt_user", "Usuario")

	message.SetString(language.English, "prompt_port", "Port")
	message.SetString(language.Spanish, "prompt_port", "Puerto")

	message.SetString(language.English, "prompt_use_password", "Use password authentication?")
	message.SetString(language.Spanish, "prompt_use_password", "¿Usar autenticación por contraseña?")

	message.SetString(language.English, "prompt_key_path", "SSH key path")
	message.SetString(language.Spanish, "prompt_key_path", "Ruta de la clave SSH")

	message.SetString(language.English, "confirm_remove", "Remove server %s from your SSH config?")
	message.SetString(language.Spanish, "confirm_remove", "¿Eliminar el servidor %s de tu configuración SSH?")

	// Results
	message.SetString(language.English, "host_added", "Server %s added successfully!")
	message.SetString(language.Spanish, "host_added", "¡Servidor %s añadido con éxito!")

	message.SetString(language.English, "host_updated", "Server %s updated successfully!")
	message.SetString(language.Spanish, "host_updated", "¡Servidor %s actualizado con éxito!")

	message.SetString(language.English, "host_removed", "Server %s removed.")
	message.SetString(language.Spanish, "host_removed", "Servidor %s eliminado.")

	message.SetString(language.English, "connecting_to", "Connecting to %s...")
	message.SetString(language.Spanish, "connecting_to", "Conectando a %s...")

	message.SetString(language.English, "cancelled", "Cancelled.")
	message.SetString(language.Spanish, "cancelled", "Cancelado.")

	message.SetString(language.English, "goodbye", "Thank you for using ossh! Goodbye!")
	message.SetString(language.Spanish, "goodbye", "¡Gracias por usar ossh! ¡Adiós!")

	// Errors and warnings
	message.SetString(language.English, "err_not_tty", "interactive selection requires a terminal (try 'ossh list')")
	message.SetString(language.Spanish, "err_not_tty", "la selección interactiva requiere una terminal (prueba 'ossh list')")

	message.SetString(language.English, "warn_key_unreadable", "Warning: %s does not look like a usable private key: %v")
	message.SetString(language.Spanish, "warn_key_unreadable", "Advertencia: %s no parece una clave privada utilizable: %v")
}

// T translates a message key with optional arguments
func T(key string, args ...interface{}) string {
	printerMu.RLock()
	p := printer
	printerMu.RUnlock()

	if p == nil {
		initI18n("")
		printerMu.RLock()
		p = printer
		printerMu.RUnlock()
	}

	return p.Sprintf(key, args...)
}
