package useragent

import "github.com/dmitrymomot/uadetect/pkg/rules"

// detectBot matches ua against the bot catalog. A hit ends classification.
func (d *Detector) detectBot(ua string) *Bot {
	r, m, ok := d.catalogs.bots.Match(ua)
	if !ok {
		return nil
	}

	bot := &Bot{
		Name:     rules.Expand(r.Name, m),
		Category: r.Category,
		URL:      r.URL,
	}
	if bot.Name == "" {
		bot.Name = "Generic Bot"
	}
	if r.Producer != nil {
		bot.Producer = &Producer{Name: r.Producer.Name, URL: r.Producer.URL}
	}
	return bot
}
