package vehicle

type makesOutput struct {
	Body namesResponse
}

type modelsInput struct {
	Make string `path:"make" example:"HONDA" doc:"Марка из справочника"`
}

type modelsOutput struct {
	Body namesResponse
}

type namesResponse struct {
	Items []string `json:"items" doc:"Отсортированный список без пустых значений"`
	Count int      `json:"count"`
}

func toNames(items []string) namesResponse {
	if items == nil {
		items = []string{}
	}
	return namesResponse{Items: items, Count: len(items)}
}
