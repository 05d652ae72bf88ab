package app

import "github.com/parley-chat/parley/internal/keys"

// Top-level shortcuts. Everything else falls through to the composer.
var (
	keyQuit      = keys.CtrlC
	keySend      = keys.Enter
	keyTheme     = keys.CtrlT
	keySettings  = keys.CtrlE
	keyCopyReply = keys.CtrlY
)
