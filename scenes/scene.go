package scenes

// SceneChanger swaps the scene the game runs.
type SceneChanger interface {
	ChangeScene(scene interface{})
}
