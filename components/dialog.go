package components

import "github.com/yohamta/donburi"

// DialogData is the global confirm dialog
type DialogData struct {
	Open      bool
	Title     string
	LeftText  string
	RightText string
	LeftFunc  func()
	RightFunc func()
}

var Dialog = donburi.NewComponentType[DialogData]()
