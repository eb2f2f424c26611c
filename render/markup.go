package render

// pageMarkup is the full document template: structure plus inline styling,
// no scripts, safe to rasterize off-screen. The layout follows the printed
// itinerary: header banner, travel details, day-by-day timeline, flight
// summary, hotel bookings, notes, scope of service, inclusions, activity
// table, payment plan, visa details, call to action and company footer.
const pageMarkup = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: 'Inter', sans-serif;
    line-height: 1.4;
    color: #333;
    background: white;
    font-size: 14px;
    width: 210mm;
  }
  .container { width: 100%; background: white; }
  .header-banner {
    background: linear-gradient(135deg, #3B82F6 0%, #8B5CF6 100%);
    border-radius: 12px;
    padding: 30px;
    text-align: center;
    color: white;
    margin-bottom: 20px;
  }
  .header-banner h1 { font-size: 24px; font-weight: 600; margin-bottom: 8px; }
  .header-banner h2 { font-size: 32px; font-weight: 700; margin-bottom: 8px; }
  .header-banner h3 { font-size: 18px; font-weight: 500; }
  .travel-details {
    background: white;
    border-radius: 8px;
    padding: 20px;
    margin-bottom: 30px;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
  }
  .travel-details table { width: 100%; border-collapse: collapse; }
  .travel-details th {
    background: #8B5CF6; color: white; padding: 12px;
    text-align: left; font-weight: 600; font-size: 14px;
  }
  .travel-details td {
    padding: 12px; border-bottom: 1px solid #e5e7eb;
    font-size: 14px; color: #374151;
  }
  .section-title {
    font-size: 20px; font-weight: bold; color: #8B5CF6;
    margin: 30px 0 15px 0; padding-bottom: 5px;
    border-bottom: 3px solid #8B5CF6; display: inline-block;
  }
  .day-item {
    display: flex; margin-bottom: 25px; background: white;
    border-radius: 8px; overflow: hidden; box-shadow: 0 2px 4px rgba(0,0,0,0.1);
  }
  .day-sidebar {
    background: #8B5CF6; color: white; padding: 20px 15px; min-width: 80px;
    text-align: center; display: flex; flex-direction: column; justify-content: center;
  }
  .day-number { font-size: 18px; font-weight: bold; margin-bottom: 5px; }
  .day-date { font-size: 12px; opacity: 0.9; }
  .day-content { flex: 1; padding: 20px; display: flex; align-items: flex-start; }
  .day-image {
    width: 60px; height: 60px; border-radius: 50%; object-fit: cover;
    margin-right: 20px; flex-shrink: 0;
  }
  .timeline { position: relative; padding-left: 20px; }
  .timeline-item { position: relative; margin-bottom: 15px; }
  .timeline-time { font-weight: 600; color: #374151; font-size: 14px; margin-bottom: 4px; }
  .timeline-activity { color: #6b7280; font-size: 13px; line-height: 1.4; }
  .info-table {
    width: 100%; border-collapse: collapse; margin-bottom: 20px;
    border-radius: 8px; overflow: hidden; box-shadow: 0 2px 4px rgba(0,0,0,0.1);
  }
  .info-table th {
    background: #8B5CF6; color: white; padding: 12px;
    text-align: left; font-weight: 600; font-size: 14px;
  }
  .info-table td {
    padding: 12px; border-bottom: 1px solid #e5e7eb;
    font-size: 13px; color: #374151; background: #f8fafc;
  }
  .info-table tr:last-child td { border-bottom: none; }
  .flight-item {
    display: flex; align-items: center; margin-bottom: 10px;
    padding: 10px; background: #f8fafc; border-radius: 6px;
  }
  .flight-date { font-weight: bold; color: #374151; margin-right: 15px; min-width: 100px; }
  .flight-arrow { margin: 0 10px; color: #6b7280; }
  .flight-details { color: #374151; flex: 1; }
  .flight-note { font-size: 12px; color: #6b7280; font-style: italic; margin-top: 10px; }
  .payment-summary { background: #f8fafc; padding: 15px; border-radius: 8px; margin-bottom: 15px; }
  .total-amount { font-size: 18px; font-weight: bold; color: #8B5CF6; margin-bottom: 5px; }
  .per-person { font-size: 14px; color: #6b7280; }
  .cta-section { text-align: center; margin: 30px 0; }
  .cta-title { font-size: 28px; font-weight: bold; color: #8B5CF6; margin-bottom: 20px; }
  .book-now-btn {
    background: #8B5CF6; color: white; padding: 15px 40px; border: none;
    border-radius: 25px; font-size: 16px; font-weight: 600;
  }
  .footer {
    margin-top: 40px; padding: 20px 0; border-top: 1px solid #e5e7eb;
    display: flex; align-items: flex-start;
  }
  .footer-logo { font-size: 18px; font-weight: bold; color: #8B5CF6; margin-right: 20px; }
  .footer-info { font-size: 12px; color: #6b7280; line-height: 1.4; }
  .terms-link { color: #3B82F6; text-decoration: underline; font-size: 12px; margin: 20px 0; text-align: center; }
</style>
</head>
<body>
<div class="container">

  <div class="header-banner">
    <h1>Hi, {{.TravelerName}}!</h1>
    <h2>{{.Destination}} Itinerary</h2>
    <h3>{{if .Duration}}{{.Duration}}{{else}}{{.TotalDays}} Days {{.TotalNights}} Nights{{end}}</h3>
  </div>

  <div class="travel-details">
    <table>
      <thead>
        <tr>
          <th>Departure From</th>
          <th>Departure</th>
          <th>Arrival</th>
          <th>Destination</th>
          <th>No. of Travelers</th>
        </tr>
      </thead>
      <tbody>
        <tr>
          <td>{{.DepartureFrom}}</td>
          <td>{{.DepartureTo}}</td>
          <td>{{.DepartureTo}}</td>
          <td>{{.Destination}}</td>
          <td>{{.TotalPadded}}</td>
        </tr>
        <tr>
          <td colspan="5">Adults: {{.AdultsPadded}} &middot; Children: {{.ChildrenPadded}} &middot; Infants: {{.InfantsPadded}}</td>
        </tr>
      </tbody>
    </table>
  </div>

  <div class="daily-itinerary">
    {{range .Days}}
    <div class="day-item">
      <div class="day-sidebar">
        <div class="day-number">Day {{.DayNumber}}</div>
        <div class="day-date">{{.Date}}</div>
      </div>
      <div class="day-content">
        {{if .ImageURL}}<img src="{{.ImageURL}}" alt="Day {{.DayNumber}}" class="day-image" />{{else}}<div class="day-image" style="background: #e5e7eb;"></div>{{end}}
        <div class="day-activities">
          <div class="timeline">
            <div class="timeline-item">
              <div class="timeline-time">Morning</div>
              <div class="timeline-activity">{{.Morning.Title}} - {{.Morning.Description}}</div>
            </div>
            <div class="timeline-item">
              <div class="timeline-time">Afternoon</div>
              <div class="timeline-activity">{{.Afternoon.Title}} - {{.Afternoon.Description}}</div>
            </div>
            <div class="timeline-item">
              <div class="timeline-time">Evening</div>
              <div class="timeline-activity">{{.Evening.Title}} - {{.Evening.Description}}</div>
            </div>
          </div>
        </div>
      </div>
    </div>
    {{end}}
  </div>

  <div class="flight-summary">
    <div class="section-title">Flight Summary</div>
    {{range .Flights}}
    <div class="flight-item">
      <div class="flight-date">{{.Date}}</div>
      <div class="flight-arrow">&rarr;</div>
      <div class="flight-details">Fly {{.Airline}} ({{.FlightNumber}}) from {{.From}} to {{.To}}</div>
    </div>
    {{end}}
    <div class="flight-note">Each passenger is allowed 20kg check-in baggage and 7kg hand baggage.</div>
  </div>

  <div class="section-title">Hotel Bookings</div>
  <table class="info-table">
    <thead>
      <tr><th>City</th><th>Check-in</th><th>Check-out</th><th>Nights</th><th>Hotel Name</th></tr>
    </thead>
    <tbody>
      {{range .Hotels}}
      <tr><td>{{.City}}</td><td>{{.CheckIn}}</td><td>{{.CheckOut}}</td><td>{{.Nights}}</td><td>{{.HotelName}}</td></tr>
      {{end}}
    </tbody>
  </table>
  <div class="flight-note">Hotel details are subject to change based on availability. Similar category hotels will be provided if the mentioned hotels are unavailable.</div>

  <div class="section-title">Important Notes</div>
  <table class="info-table">
    <thead>
      <tr><th>Point</th><th>Details</th></tr>
    </thead>
    <tbody>
      {{range .Notes}}
      <tr><td>{{.Point}}</td><td>{{.Details}}</td></tr>
      {{end}}
    </tbody>
  </table>

  <div class="section-title">Scope Of Service</div>
  <table class="info-table">
    <thead>
      <tr><th>Service</th><th>Details</th></tr>
    </thead>
    <tbody>
      {{range .Services}}
      <tr><td>{{.Service}}</td><td>{{.Details}}</td></tr>
      {{end}}
    </tbody>
  </table>

  <div class="section-title">Inclusion Summary</div>
  <table class="info-table">
    <thead>
      <tr><th>Category</th><th>Count</th><th>Details</th><th>Remarks</th></tr>
    </thead>
    <tbody>
      {{range .Inclusions}}
      <tr><td>{{.Category}}</td><td>{{.Count}}</td><td>{{.Details}}</td><td>{{.Status}}</td></tr>
      {{end}}
    </tbody>
  </table>

  <div class="section-title">Activity Table</div>
  <table class="info-table">
    <thead>
      <tr><th>City</th><th>Activity</th><th>Type</th><th>Time Required</th></tr>
    </thead>
    <tbody>
      {{range .Activities}}
      <tr><td>{{.City}}</td><td>{{.Title}}</td><td>{{.Type}}</td><td>{{.TimeRequired}}</td></tr>
      {{end}}
    </tbody>
  </table>

  <div class="terms-link">Click here to read terms and conditions</div>

  <div class="section-title">Payment Plan</div>
  <div class="payment-summary">
    <div class="total-amount">{{.Currency}} {{.TotalFormatted}} (For {{.TravelerCount}} Pax, i.e., {{.Currency}} {{.PerPaxFormatted}}/Pax)</div>
    <div class="per-person">TDS: {{.TDS}}</div>
  </div>
  <table class="info-table">
    <thead>
      <tr><th>Installment</th><th>Amount</th><th>Due Date</th><th>Status</th></tr>
    </thead>
    <tbody>
      {{range .Installments}}
      <tr><td>{{.Name}}</td><td>{{$.Currency}} {{money .Amount}}</td><td>{{.DueDate}}</td><td>{{.Status}}</td></tr>
      {{end}}
    </tbody>
  </table>

  <div class="section-title">Visa Details</div>
  <table class="info-table">
    <thead>
      <tr><th>Visa Type</th><th>Validity</th><th>Processing Days</th></tr>
    </thead>
    <tbody>
      <tr><td>{{.VisaType}}</td><td>30 Days</td><td>{{.VisaProcessingDays}}</td></tr>
    </tbody>
  </table>

  <div class="cta-section">
    <div class="cta-title">PLAN.PACK.GO!</div>
    <button class="book-now-btn">Book Now</button>
  </div>

  <div class="footer">
    <div class="footer-logo">{{.Footer.Logo}}</div>
    <div class="footer-info">
      <div>{{.Footer.Website}}</div>
      <div>{{.Footer.Office}}</div>
      <div>{{.Footer.Phone}}</div>
      <div>{{.Footer.Email}}</div>
      <div>{{.Footer.CIN}}</div>
    </div>
  </div>

</div>
</body>
</html>
`
