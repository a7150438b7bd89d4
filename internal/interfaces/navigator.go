package interfaces

// Navigator переключает экраны приложения.
type Navigator interface {
	GoToGameplayView()
	GoToMenuView()
	Quit()
}
