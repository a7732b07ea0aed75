package health

type Input struct{}

type Output struct {
	Body Response
}

// Response - состояние сервиса. Error заполняется, только если хранилище не ответило.
type Response struct {
	Status  string `json:"status" example:"OK" enum:"OK,DEGRADED" doc:"Общее состояние"`
	Storage string `json:"storage" example:"OK" enum:"OK,DEGRADED" doc:"Состояние хранилища гаража"`
	Error   string `json:"error,omitempty" doc:"Ошибка хранилища"`
}
