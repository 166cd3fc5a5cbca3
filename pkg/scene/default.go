package scene

import "strings"

// HeroImage is the cover art of issue 01.
const HeroImage = "https://comiccon2025.github.io/dcHero.png"

// Hero returns the opening scene of issue 01.
func Hero() Scene {
	return Scene{
		ID:       "hero",
		Label:    "01",
		Title:    "Цифровой Криминалист — первый выпуск",
		Subtitle: "Игромир 2025. Публичный дебют форензик-системы",
		Description: "Ночной мегаполис и неоновый фасад Игромира 2025. " +
			"На огромной панели — граф связей, спектры и временные ряды, " +
			"которые показывают работу моделей анализа речи, текста и сетевой активности. " +
			"Рядом — аналитик «Цифрового Криминалиста», представитель Федеральной службы бессознательного.",
		Image: HeroImage,
		Explanation: "Граф в блоке «Схема процесса» показывает, как выпуск 01 связывает Игромир 2025, " +
			"аналитика и форензик-модели: наверху события, в центре данные и модели, внизу — интерфейс игрока. " +
			"Под обложкой слева расположен спектральный блок с полосами амплитуд, который будет повторяться во всех сценах с аудиоанализом.",
		ProcessGraph: true,
		Spectral:     true,
	}
}

// Station returns the station briefing scene with its code listing.
func Station() Scene {
	return Scene{
		ID:       "station",
		Label:    "02",
		Title:    "Игромир & Comic Con 2025",
		Subtitle: "Интерактивный комикс о цифровой форензике в Арктике",
		Description: "Вы попадаете на международную станцию «Снежинка» и в систему «Цифровой Криминалист». " +
			"В игре соединяются VR, AR, WEB и десктоп-режимы. Этот пригласительный комикс показывает все ключевые сцены и механики.",
		Code: strings.Join([]string{
			"// Инициализация арктического форензик-контура",
			"const app = initForensicPipeline({",
			`  station: "Снежинка",`,
			`  creators: ["команда Atomic Heart"],`,
			`  modes: ["VR", "AR", "WEB", "Desktop"],`,
			`  modules: ["Техника", "Биотех", "Форензика", "Учебный режим"]`,
			"});",
			"",
			"// Дальше в комиксе мы пройдёмся по каждому модулю:",
			"app.showStoryboard();",
		}, "\n"),
		Explanation: "Этот кадр задаёт контекст: единая система связывает «Снежинку», " +
			"игровые режимы и форензик-модели. Дальше комикс раскрывает каждый модуль по отдельности.",
	}
}

// DefaultScenes returns the scenes of issue 01 in reading order.
func DefaultScenes() []Scene { return []Scene{Hero(), Station()} }

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog { return MustCatalog(DefaultScenes()...) }
