package component

// Score — счётчики добиваний и денаев игрока (герой команды A).
type Score struct {
	LastHits int
	Denies   int
}
