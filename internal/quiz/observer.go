package quiz

// Observer receives lifecycle notifications from a Controller. Calls are
// made without the controller lock held and may come from any goroutine.
type Observer interface {
	OnLoadStart(text string)
	OnLoadingText(text string)
	OnLoaded(view QuizView)
	OnLoadFailed(err error)
	OnGraded(result Result)
}

// NopObserver ignores all notifications. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) OnLoadStart(string)   {}
func (NopObserver) OnLoadingText(string) {}
func (NopObserver) OnLoaded(QuizView)    {}
func (NopObserver) OnLoadFailed(error)   {}
func (NopObserver) OnGraded(Result)      {}
