package stream

import "github.com/xaenox/sentimeter/internal/models"

// Tweets is the pre-labeled catalog replayed against the service.
var Tweets = []models.DatasetEntry{
	// Positive
	{Text: "Just got accepted into my dream university! So grateful and excited for this new chapter! 🎓", Sentiment: models.LabelPositive},
	{Text: "The new iPhone features are absolutely amazing! Apple never fails to impress with their innovation.", Sentiment: models.LabelPositive},
	{Text: "Just completed my first marathon! The feeling of accomplishment is incredible! 🏃‍♂️", Sentiment: models.LabelPositive},
	{Text: "The customer service at this company is outstanding! They went above and beyond to help me.", Sentiment: models.LabelPositive},
	{Text: "Beautiful sunset tonight! Nature always knows how to amaze me. 🌅", Sentiment: models.LabelPositive},
	{Text: "Just got promoted at work! Hard work really does pay off! 💼", Sentiment: models.LabelPositive},
	{Text: "The new Spider-Man movie is fantastic! Best superhero film I've seen in years.", Sentiment: models.LabelPositive},
	{Text: "Amazing concert last night! The energy was electric and the performance was flawless.", Sentiment: models.LabelPositive},

	// Negative
	{Text: "Flight delayed for 5 hours with no explanation. Absolutely terrible service from the airline.", Sentiment: models.LabelNegative},
	{Text: "My phone battery dies after 2 hours. Completely unacceptable for a device this expensive.", Sentiment: models.LabelNegative},
	{Text: "The traffic this morning was horrible. Stuck for 2 hours and missed my important meeting.", Sentiment: models.LabelNegative},
	{Text: "Package lost in transit and customer service is unhelpful. Very frustrating experience.", Sentiment: models.LabelNegative},
	{Text: "The food at this restaurant was disgusting. Never going back again.", Sentiment: models.LabelNegative},
	{Text: "Internet down for the third time this week. This service provider is completely unreliable.", Sentiment: models.LabelNegative},
	{Text: "The movie was terrible. Waste of time and money. Plot made no sense.", Sentiment: models.LabelNegative},
	{Text: "Airline lost my luggage and no one is taking responsibility. Worst travel experience ever.", Sentiment: models.LabelNegative},

	// Neutral / mixed
	{Text: "Working from home today. The weather is okay, not too hot not too cold.", Sentiment: models.LabelNeutral},
	{Text: "Just finished reading that book. It was interesting but had some slow parts.", Sentiment: models.LabelNeutral},
	{Text: "The new software update has some good features but also some bugs that need fixing.", Sentiment: models.LabelNeutral},
	{Text: "Traffic is moving slowly today. Expected to arrive in about 30 minutes.", Sentiment: models.LabelNeutral},
	{Text: "The conference had some great speakers but the organization could be better.", Sentiment: models.LabelNeutral},
	{Text: "Trying out the new coffee shop. The ambiance is nice but the coffee is average.", Sentiment: models.LabelNeutral},

	// Tech / programming
	{Text: "Just deployed my machine learning model to production! The results look promising so far.", Sentiment: models.LabelPositive},
	{Text: "Python 3.11 performance improvements are incredible! My code runs 25% faster now.", Sentiment: models.LabelPositive},
	{Text: "Spent 6 hours debugging a simple typo. Programming can be so frustrating sometimes.", Sentiment: models.LabelNegative},
	{Text: "The new React documentation is much clearer and easier to understand. Great job team!", Sentiment: models.LabelPositive},
	{Text: "Docker containers making deployment so much smoother. Love this technology!", Sentiment: models.LabelPositive},
	{Text: "Another npm package with breaking changes. This ecosystem is getting hard to maintain.", Sentiment: models.LabelNegative},
	{Text: "Just completed my full-stack project! Feeling accomplished and ready for the next challenge.", Sentiment: models.LabelPositive},
	{Text: "Git merge conflicts are the worst part of collaborative coding. So time-consuming.", Sentiment: models.LabelNegative},
	{Text: "The VS Code Live Share feature is revolutionary for pair programming. Amazing tool!", Sentiment: models.LabelPositive},
	{Text: "API rate limits are killing my application's performance. Need to optimize better.", Sentiment: models.LabelNegative},
}
