package interfaces

// ScoreKeeper — счёт текущей сессии.
type ScoreKeeper interface {
	AddPoints(amount int)
	SaveSessionScore() error
	SessionScore() int
}
