package i18n

import goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

// Message IDs used by the interface.
const (
	AppTitle = "app.title"

	ScreenMain      = "screen.main"
	ScreenNews      = "screen.news"
	ScreenSchedule  = "screen.schedule"
	ScreenHistory   = "screen.history"
	ScreenTransfers = "screen.transfers"
	ScreenSettings  = "screen.settings"

	MainField1      = "main.field1"
	MainField2      = "main.field2"
	MainCategories  = "main.categories"
	MainLeagues     = "main.leagues"
	MainTeams       = "main.teams"
	MainNoMatch     = "main.no_match"
	MainPickLeague  = "main.pick_league"
	MainLeagueCount = "main.league_count"

	Loading = "common.loading"
	Saving  = "common.saving"

	TransfersPlayer  = "transfers.player"
	TransfersPrice   = "transfers.price"
	TransfersWhereTo = "transfers.where_to"
	TransfersCount   = "transfers.count"

	ScheduleTeam1 = "schedule.team1"
	ScheduleTime  = "schedule.time"
	ScheduleTeam2 = "schedule.team2"

	SettingsDarkTheme = "settings.dark_theme"
	SettingsRussian   = "settings.russian"
	SettingsOn        = "settings.on"
	SettingsOff       = "settings.off"
)

var english = []*goi18n.Message{
	{ID: AppTitle, Other: "Sideline"},
	{ID: ScreenMain, Other: "Main"},
	{ID: ScreenNews, Other: "News"},
	{ID: ScreenSchedule, Other: "Schedule"},
	{ID: ScreenHistory, Other: "History Archive"},
	{ID: ScreenTransfers, Other: "Latest Transfers"},
	{ID: ScreenSettings, Other: "Settings"},
	{ID: MainField1, Other: "Field 1"},
	{ID: MainField2, Other: "Field 2"},
	{ID: MainCategories, Other: "Sports"},
	{ID: MainLeagues, Other: "Leagues"},
	{ID: MainTeams, Other: "Teams of {{.League}}"},
	{ID: MainNoMatch, Other: "No leagues match selected sports"},
	{ID: MainPickLeague, Other: "Pick a league and press enter to see its teams"},
	{ID: MainLeagueCount, Other: "{{.Shown}} of {{.Total}} leagues"},
	{ID: Loading, Other: "Loading…"},
	{ID: Saving, Other: "Saving…"},
	{ID: TransfersPlayer, Other: "Player"},
	{ID: TransfersPrice, Other: "Price"},
	{ID: TransfersWhereTo, Other: "Where to"},
	{ID: TransfersCount, Other: "{{.Count}} of 9 flagged"},
	{ID: ScheduleTeam1, Other: "Team 1"},
	{ID: ScheduleTime, Other: "Time"},
	{ID: ScheduleTeam2, Other: "Team 2"},
	{ID: SettingsDarkTheme, Other: "Dark Theme"},
	{ID: SettingsRussian, Other: "Russian Language"},
	{ID: SettingsOn, Other: "On"},
	{ID: SettingsOff, Other: "Off"},
}

var russian = []*goi18n.Message{
	{ID: AppTitle, Other: "Sideline"},
	{ID: ScreenMain, Other: "Главная"},
	{ID: ScreenNews, Other: "Новости"},
	{ID: ScreenSchedule, Other: "Расписание"},
	{ID: ScreenHistory, Other: "Архив истории"},
	{ID: ScreenTransfers, Other: "Последние трансферы"},
	{ID: ScreenSettings, Other: "Настройки"},
	{ID: MainField1, Other: "Поле 1"},
	{ID: MainField2, Other: "Поле 2"},
	{ID: MainCategories, Other: "Виды спорта"},
	{ID: MainLeagues, Other: "Лиги"},
	{ID: MainTeams, Other: "Команды: {{.League}}"},
	{ID: MainNoMatch, Other: "Нет лиг для выбранных видов спорта"},
	{ID: MainPickLeague, Other: "Выберите лигу и нажмите enter, чтобы увидеть команды"},
	{ID: MainLeagueCount, Other: "Лиг: {{.Shown}} из {{.Total}}"},
	{ID: Loading, Other: "Загрузка…"},
	{ID: Saving, Other: "Сохранение…"},
	{ID: TransfersPlayer, Other: "Игрок"},
	{ID: TransfersPrice, Other: "Цена"},
	{ID: TransfersWhereTo, Other: "Куда"},
	{ID: TransfersCount, Other: "Отмечено {{.Count}} из 9"},
	{ID: ScheduleTeam1, Other: "Команда 1"},
	{ID: ScheduleTime, Other: "Время"},
	{ID: ScheduleTeam2, Other: "Команда 2"},
	{ID: SettingsDarkTheme, Other: "Тёмная тема"},
	{ID: SettingsRussian, Other: "Русский язык"},
	{ID: SettingsOn, Other: "Вкл"},
	{ID: SettingsOff, Other: "Выкл"},
}
