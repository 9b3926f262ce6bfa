// models содержит доменные сущности клиента дорожных новостей ADAC.
// Эти типы используются слоями запроса, маппинга ответа, пагинации и вывода.
package models

// Значения фильтра по умолчанию (совпадают с тем, что шлёт сайт ADAC).
const (
	DefaultCountry = "D"
	FirstPage      = 1
)

// NewsRequest — фильтр одной страницы запроса trafficNews.
//
// Особенности:
//   - значение полностью определяет запрос одной страницы;
//   - FederalState — свободный текст, валидность решает апстрим
//     (закрытый список см. State);
//   - PageNumber начинается с 1.
type NewsRequest struct {
	// Country — код страны в терминах ADAC ("D" для Германии).
	Country string `json:"country"`
	// FederalState — код земли, например "BB".
	FederalState string `json:"federal_state"`
	// Street — фильтр по дороге ("A10", "B96"), пустая строка — без фильтра.
	Street string `json:"street"`
	// ConstructionSites — включать ли стройки.
	ConstructionSites bool `json:"construction_sites"`
	// TrafficNews — включать ли сообщения о пробках/авариях.
	TrafficNews bool `json:"traffic_news"`
	// PageNumber — номер страницы, 1-based.
	PageNumber int `json:"page_number"`
}

// DefaultRequest возвращает фильтр по умолчанию для земли state.
func DefaultRequest(state string) NewsRequest {
	return NewsRequest{
		Country:      DefaultCountry,
		FederalState: state,
		TrafficNews:  true,
		PageNumber:   FirstPage,
	}
}

// WithPage возвращает копию запроса с другим номером страницы.
func (r NewsRequest) WithPage(page int) NewsRequest {
	r.PageNumber = page
	return r
}

// News — одно дорожное сообщение (NewsResponse), собранное из проверенного JSON-объекта.
// После создания не изменяется.
type News struct {
	// ID — числовой идентификатор сообщения у ADAC.
	ID int64 `json:"id"`
	// Type — тип сообщения (например, "STAU", "BAUSTELLE").
	Type string `json:"type"`
	// Country — страна из streetSign, nil если блока нет.
	Country *string `json:"country,omitempty"`
	// Street — название дороги.
	Street string `json:"street"`
	// StreetNumber — номер дороги из streetSign, nil если блока нет.
	StreetNumber *string `json:"street_number,omitempty"`
	// Headline — заголовок, nil если апстрим его не прислал или форма не распознана.
	Headline *Headline `json:"headline,omitempty"`
	// TimeLoss — задержка в минутах, nil если не указана.
	TimeLoss *int `json:"time_loss,omitempty"`
	// Details — свободный текст сообщения.
	Details string `json:"details"`
}

// Page — одна страница результата.
// Total — размер всего (непагинированного) набора, Items — сообщения этой страницы.
type Page struct {
	Total int
	Items []News
}
