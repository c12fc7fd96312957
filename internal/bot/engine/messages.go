package engine

// User-facing texts. Strings with HTML markup are sent with HTML parsing;
// values substituted into them must be escaped.
const (
	msgWelcome = "👋 Вітаю в боті для пошуку напарників у Valorant!\n\n" +
		"Тут ти можеш створити анкету для пошуку гравців твого рівня. " +
		"Після модерації твоя анкета з'явиться в нашому каналі.\n\n" +
		"💡 Оберіть дію з меню нижче:"
	msgWelcomeOwner = "\n\n👑 Ви є власником бота. Доступні команди:\n" +
		"/add_moderator - додати модератора\n" +
		"/remove_moderator - видалити модератора\n" +
		"/list_moderators - список модераторів"

	msgRules = "<b>Правила заповнення анкети та поведінки:</b>\n\n" +
		"1. ✅ Заповнюйте анкету правдиво\n" +
		"2. ❌ Заборонено образливий контент\n" +
		"3. 👤 Не більше 1 активної анкети\n" +
		"4. 🤝 Поважайте інших гравців\n" +
		"5. 🎯 Вказуйте коректний Riot ID\n\n" +
		"<b>Пояснення до правил:</b>\n" +
		"• <b>1 активна анкета</b> - ви можете мати лише одну анкету одночасно (на модерації або опубліковану)\n" +
		"• Для оновлення анкети - видаліть стару та створіть нову\n" +
		"• Після відхилення анкети ви можете негайно створити нову\n\n" +
		"Порушення правил призводить до блокування!"

	msgChooseAction = "Оберіть дію:"

	cancelHint = "\n\n<i>Для скасування створення анкети натисніть кнопку 'Скасувати'</i>"

	msgAskRiotID       = "🎮 Введіть ваш Riot ID у форматі <b>Nickname#Tag</b>\n\nНаприклад: Player123#EUW" + cancelHint
	msgBadRiotID       = "❌ Неправильний формат Riot ID!\nВведіть у форматі <b>Nickname#Tag</b>\n\nНаприклад: Player123#EUW" + cancelHint
	fmtRiotIDTooLong   = "❌ Riot ID занадто довгий! Максимум %d символів." + cancelHint
	msgAskAge          = "📅 Введіть ваш вік:" + cancelHint
	fmtAgeRange        = "❌ Введіть коректний вік (%d-%d):" + cancelHint
	msgAgeNotNumber    = "❌ Введіть числове значення для віку:" + cancelHint
	msgAskRank         = "🏆 Оберіть ваш ранг:"
	fmtAskRoles        = "🏆 Ваш ранг: <b>%s</b>\n\n🎯 Оберіть ваші ролі (до %d):"
	fmtTooManyRoles    = "❌ Можна вибрати не більше %d ролей!"
	msgNoRoles         = "❌ Оберіть хоча б одну роль!"
	fmtRolesTooLong    = "❌ Ролі занадто довгі! Максимум %d символів."
	fmtAskAgents       = "🎯 Ваші ролі: <b>%s</b>\n\n🦸 Оберіть ваших основних агентів (до %d):"
	fmtTooManyAgents   = "❌ Можна вибрати не більше %d агентів!"
	msgNoAgents        = "❌ Оберіть хоча б одного агента!"
	fmtAskRegion       = "🦸 Ваші агенти: <b>%s</b>\n\n🌍 Оберіть регіон для гри:"
	msgAskRegionAgain  = "🌍 Оберіть регіон для гри:"
	msgBadRegion       = "❌ Помилка вибору регіону!"
	fmtAskServers      = "🌍 Регіон: <b>%s</b>\n\n📍 Оберіть сервери для гри:"
	msgNoServers       = "❌ Оберіть хоча б один сервер!"
	fmtAskBio          = "📍 Ваші сервери: <b>%s</b>\n\n💬 Розкажіть трохи про себе:\n- Ваш стиль гри\n- Цілі (рангова, турніри, просто для fun)\n- Побажання до напарників\n\n<i>Можна пропустити, відправивши '-'</i>" + cancelHint
	fmtBioTooLong      = "❌ Біографія занадто довга! Максимум %d символів." + cancelHint
	msgAskContact      = "📞 Введіть контакт для зв'язку:\nНаприклад: @username в Telegram або Discord username" + cancelHint
	msgNoContact       = "❌ Будь ласка, введіть контакт для зв'язку:" + cancelHint
	fmtContactTooLong  = "❌ Контактна інформація занадто довга! Максимум %d символів." + cancelHint
	fmtPreview         = "📋 <b>Попередній перегляд вашої анкети:</b>\n\n%s\n✅ Все вірно?"
	msgUseButtons      = "❌ Скористайтесь кнопками вище або натисніть 'Скасувати'."
	msgBadData         = "❌ Помилка обробки даних!"
	msgActionExpired   = "❌ Ця дія зараз недоступна."
	msgInternal        = "❌ Сталася помилка. Спробуйте пізніше."
	msgTooFast         = "⏳ Забагато дій. Зачекайте кілька секунд."
	msgFormCancelled   = "❌ Створення анкети скасовано."
	msgActionCancelled = "✅ Поточну дію скасовано."
	msgNothingToCancel = "❌ Немає активних дій для скасування."

	msgHasPending  = "⏳ У вас вже є анкета, яка очікує на модерацію.\nЗачекайте, поки її перевірять, або видаліть її перед створенням нової."
	msgHasApproved = "✅ У вас вже є активна опублікована анкета.\nВидаліть її перед створенням нової."
	msgConflict    = "❌ У вас вже є активна анкета (на модерації або опублікована)!\nВидаліть існуючу анкету перед створенням нової."
	msgSubmitted   = "✅ Ваша анкета успішно створена та відправлена на модерацію!\nВи отримаєте сповіщення, коли її буде перевірено."

	msgNoApplication  = "📭 У вас ще немає активних анкет.\nСтворіть нову анкету за допомогою кнопки 'Подати анкету'."
	msgMinePending    = "⏳ Ваша анкета ще на перевірці модераторами.\nБудь ласка, зачекайте результат."
	fmtMineApproved   = "✅ Ваша анкета опублікована:\n\n%s"
	msgDeleted        = "✅ Ваша анкета повністю видалена з бази даних!"
	msgDeleteFailed   = "❌ Сталася помилка при видаленні анкети з бази даних. Зверніться до адміністратора."
	msgNotFound       = "❌ Анкету не знайдено!"
	msgNoRights       = "❌ Недостатньо прав!"
	msgProcessed      = "❌ Анкету вже оброблено іншим модератором!"
	fmtNewApplication = "🆕 Нова анкета на модерацію:\n\n%s"
	msgNoPending      = "📭 Немає анкет, що очікують на модерацію."

	msgApprovedNotice = "✅ Вашу анкету схвалено та опубліковано в каналі!"
	fmtApproved       = "✅ Анкету #%d схвалено та опубліковано!"

	fmtChooseReasons     = "❌ Оберіть причину відхилення:\n\nОбрані причини: %s"
	msgNoReasonsChosen   = "Не обрано"
	msgNeedReason        = "❌ Оберіть хоча б одну причину!"
	msgAskCustomReason   = "💬 Введіть свою причину відхилення анкети:"
	msgEmptyCustomReason = "❌ Будь ласка, введіть причину відхилення:"
	fmtRejectedNotice    = "❌ Вашу анкету відхилено з наступних причин:\n\n%s\n\nВи можете створити нову анкету, враховуючи зауваження."
	fmtRejectedCustom    = "❌ Вашу анкету відхилено з наступної причини:\n\n💬 %s\n\nВи можете створити нову анкету, враховуючи зауваження."
	fmtRejected          = "❌ Анкету #%d відхилено та повністю видалено!\n<b>Причини:</b> %s"
	fmtRejectedWithText  = "❌ Анкету #%d відхилено та видалено!\n<b>Причина:</b> %s"
	msgRejectFailed      = "❌ Помилка при відхиленні анкети!"
	msgRejectCancelled   = "✅ Процес відхилення скасовано"
	fmtInconsistency     = "🚨 Анкету #%d не вдалося видалити після відхилення. Користувача вже сповіщено, запис лишився на модерації."

	msgModeratorWelcome = "👮 Бот модерації анкет\n\n"
	msgModeratorOwner   = "👑 Ви є власником бота. Доступні команди:\n" +
		"/add_moderator - додати модератора\n" +
		"/remove_moderator - видалити модератора\n" +
		"/list_moderators - список модераторів\n" +
		"/pending - анкети на модерації\n" +
		"/check_my_rights - перевірити права\n\n"
	msgModeratorRole = "🛡️ Ви є модератором. Доступні команди:\n" +
		"/pending - анкети на модерації\n" +
		"/check_my_rights - перевірити права\n\n"
	msgModeratorNone   = "❌ У вас немає прав модератора. Зверніться до адміністратора.\n\n"
	msgModeratorFooter = "📋 Модерація анкет відбувається через інлайн-кнопки під повідомленнями про нові анкети."
	msgModeratorHelp   = "📖 Довідка по командам модератора:\n\n" +
		"Для модераторів:\n" +
		"• /check_my_rights - перевірити свої права\n" +
		"• /pending - показати анкети, що очікують на модерацію\n" +
		"• Модерація анкет - через інлайн-кнопки під повідомленнями\n\n"
	msgModeratorHelpOwner = "Для власника:\n" +
		"• /add_moderator @username - додати модератора\n" +
		"• /remove_moderator @username - видалити модератора\n" +
		"• /list_moderators - список модераторів\n"

	msgOwnerOnly        = "❌ Ця команда доступна тільки власнику бота!"
	fmtModeratorUsage   = "❌ Використання: /%[1]s <user_id або @username>\n\nНаприклад:\n/%[1]s 123456789\n/%[1]s @username"
	msgUserNotFound     = "❌ Користувача не знайдено! Переконайтесь, що користувач взаємодіяв з ботом."
	msgAlreadyModerator = "❌ Цей користувач вже є модератором!"
	msgNotModerator     = "❌ Цей користувач не є модератором!"
	fmtModeratorAdded   = "✅ Користувач %s тепер модератор!"
	fmtModeratorRemoved = "✅ Користувач %s більше не модератор!"
	msgGrantedNotice    = "🎉 Вам були надані права модератора! Тепер ви можете перевіряти анкети."
	msgRevokedNotice    = "ℹ️ Ваші права модератора були відкликані."
	msgNoModerators     = "📭 Модераторів поки що немає."
	msgModeratorsHeader = "👥 Список модераторів:\n\n"
	msgUnknownSelf      = "❌ Вас не знайдено в базі даних. Спробуйте /start"
	fmtRights           = "👤 Ваші права:\n\nTelegram ID: %d\nUsername: @%s\nМодератор: %s\nВласник: %s\n"

	bioPlaceholder = "Не вказано"
	noUsername     = "немає username"
)
