package formlogin

// Config describes the upstream login form.
type Config struct {
	LoginURL      string `env:"FORMLOGIN_URL"`
	Username      string `env:"FORMLOGIN_USERNAME"`
	Password      string `env:"FORMLOGIN_PASSWORD"`
	UsernameField string `env:"FORMLOGIN_USERNAME_FIELD" envDefault:"id"`
	PasswordField string `env:"FORMLOGIN_PASSWORD_FIELD" envDefault:"pass"`
	UserAgent     string `env:"FORMLOGIN_USER_AGENT" envDefault:"Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"`

	// SuccessCookie, when set, must be present after login for it to count as successful.
	SuccessCookie string `env:"FORMLOGIN_SUCCESS_COOKIE"`
}
