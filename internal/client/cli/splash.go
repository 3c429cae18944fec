package cli

const banner = `
   ____                 _____                _
  / ___|_   _ _ __ ___ |  ___|__  ___  __| |
 | |  _| | | | '_ ' _ \| |_ / _ \/ _ \/ _' |
 | |_| | |_| | | | | | |  _|  __/  __/ (_| |
  \____|\__, |_| |_| |_|_|  \___|\___|\__,_|
        |___/
`

// showSplash prints the banner once, and only when the client was started on
// the root route.
func (a *App) showSplash() {
	if !a.splash.Get() {
		return
	}
	a.println(a.theme.Accent.Render(banner))
	a.splash.Set(false)
}
