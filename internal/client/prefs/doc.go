// Package prefs contains the client preference stores.
//
// DarkMode is persisted under the "darkMode" record and survives restarts.
// Splash is derived once from the route the client was started on and is
// never persisted.
package prefs
