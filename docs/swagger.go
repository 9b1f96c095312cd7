// Package docs ARGO Float Search API.
//
// Сервис поиска и анализа данных буёв ARGO: фильтрация профилей по времени,
// области, диапазонам измерений, платформам и флагам качества, поиск ближайших
// буёв и региональная статистика поверх хранилища профилей.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
