// Package input decodes raw terminal input into key, mouse and paste events.
//
// Supported encodings are the xterm cursor and editing key sequences with
// modifier parameters, SS3 cursor keys, SGR mouse reports and bracketed
// paste. Control bytes map to ctrl+letter keys and an ESC prefix to alt.
package input
