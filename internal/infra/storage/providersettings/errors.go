package providersettings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки провайдера не найдены
	// Для генератора слотов это не ошибка: "нет расписания" = пустая выдача
	ErrSettingsNotFound = errors.New("providersettings.repository: settings not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("providersettings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("providersettings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("providersettings.repository: failed to scan row")
)
